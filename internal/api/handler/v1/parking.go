package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citypark/parking-api/internal/api/handler/v1/request"
	"github.com/citypark/parking-api/internal/api/handler/v1/response"
	"github.com/citypark/parking-api/internal/domain"
	"github.com/citypark/parking-api/internal/service"
)

// Client-facing messages kept verbatim from the legacy API.
var (
	errNoAvailableSlots = errors.New("No available slots.")
	errTicketRequired   = errors.New("Ticket ID is required.")
	errTicketNotFound   = errors.New("Ticket ID not found.")
	errIntegrity        = errors.New("Database integrity error.")
)

type ParkingService interface {
	GetParkingLot(ctx context.Context) (domain.ParkingLot, error)
	ParkCar(ctx context.Context, vehicleRegNo string) (string, error)
	RemoveCarByTicket(ctx context.Context, ticketID string) error
}

type ParkingHandler struct {
	svc ParkingService
}

func NewParkingHandler(svc ParkingService) *ParkingHandler {
	return &ParkingHandler{
		svc: svc,
	}
}

// HandleGetParkingLot godoc
// @Summary      Get the full parking lot state
// @Tags         parking
// @Produce      json
// @Success      200      {object}   domain.ParkingLot
// @Failure      500      {object}   response.Err
// @Router       /parking_lot [get]
func (h *ParkingHandler) HandleGetParkingLot(ctx *gin.Context) {
	lot, err := h.svc.GetParkingLot(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetParkingLot -> h.svc.GetParkingLot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, lot)
}

// HandleParkCar godoc
// @Summary      Park a car in the first free slot
// @Tags         parking
// @Produce      json
// @Param        request   body      request.ParkCarRequest true "request body"
// @Success      200      {object}   response.ParkCarResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /park_car [post]
func (h *ParkingHandler) HandleParkCar(ctx *gin.Context) {
	var req request.ParkCarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticketID, err := h.svc.ParkCar(ctx.Request.Context(), req.VehicleRegNo)
	if err != nil {
		if errors.Is(err, service.ErrNoFreeSlot) {
			response.RenderErr(ctx, response.ErrBadRequest(errNoAvailableSlots))

			return
		}
		if errors.Is(err, service.ErrIntegrity) {
			response.RenderErr(ctx, response.ErrInternalServerError(errIntegrity))

			return
		}

		err = fmt.Errorf("v1.HandleParkCar -> h.svc.ParkCar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ParkCarResponse{
		Message:  "Car parked successfully.",
		TicketID: ticketID,
	})
}

// HandleRemoveCarByTicket godoc
// @Summary      Remove a parked car by its ticket
// @Tags         parking
// @Produce      json
// @Param        ticket_id   query     string true "ticket id"
// @Success      200      {object}   response.RemoveCarResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /remove_car_by_ticket [delete]
func (h *ParkingHandler) HandleRemoveCarByTicket(ctx *gin.Context) {
	ticketID := ctx.Query("ticket_id")
	if ticketID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errTicketRequired))

		return
	}

	if err := h.svc.RemoveCarByTicket(ctx.Request.Context(), ticketID); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(errTicketNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveCarByTicket -> h.svc.RemoveCarByTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.RemoveCarResponse{
		Message: "Car removed successfully.",
	})
}
