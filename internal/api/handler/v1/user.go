package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/citypark/parking-api/internal/api/handler/v1/request"
	"github.com/citypark/parking-api/internal/api/handler/v1/response"
	"github.com/citypark/parking-api/internal/domain"
	"github.com/citypark/parking-api/internal/service"
)

var errUserNotFound = errors.New("User not found.")

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, id uint, patch domain.UserPatch) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200      {array}    domain.User
// @Failure      500      {object}   response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   response.CreateUserResponse
// @Failure      500      {object}   response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Malformed bodies and missing fields surface as 500,
		// matching the legacy API contract.
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	created, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{
		Name:           req.UserName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		RegistrationNo: req.RegistrationNo,
	})
	if err != nil {
		if errors.Is(err, service.ErrIntegrity) {
			response.RenderErr(ctx, response.ErrInternalServerError(errIntegrity))

			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.CreateUserResponse{
		Message: "User created successfully.",
		UserID:  created.ID,
	})
}

// HandleUpdateUser godoc
// @Summary      Partially update a user
// @Tags         users
// @Produce      json
// @Param        userID    path      int true "user id"
// @Param        request   body      request.UpdateUserRequest true "request body"
// @Success      200      {object}   response.UpdateUserResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound(errUserNotFound))

		return
	}

	var req request.UpdateUserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	_, err = h.svc.UpdateUser(ctx.Request.Context(), uint(userID), domain.UserPatch{
		Name:           req.UserName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		RegistrationNo: req.RegistrationNo,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(errUserNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.UpdateUserResponse{
		Message: "User updated successfully.",
	})
}
