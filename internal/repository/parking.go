package repository

import (
	"context"
	"fmt"

	"github.com/citypark/parking-api/internal/domain"
	"github.com/citypark/parking-api/internal/repository/dao"
)

var (
	ErrNoFreeSlot     = dao.ErrNoFreeSlot
	ErrTicketNotFound = dao.ErrTicketNotFound
	ErrIntegrity      = dao.ErrIntegrity
)

type ParkingDAO interface {
	FindAllFloors(ctx context.Context) ([]dao.Floor, error)
	FindRowsByFloorID(ctx context.Context, floorID uint) ([]dao.Row, error)
	FindSlotsByRowID(ctx context.Context, rowID uint) ([]dao.Slot, error)
	AllocateFirstFree(ctx context.Context, vehicleRegNo string, makeTicket func(slotID uint) string) (dao.Slot, error)
	ReleaseByTicket(ctx context.Context, ticketID string) (dao.Slot, error)
}

type ParkingRepository struct {
	dao ParkingDAO
}

func NewParkingRepository(dao ParkingDAO) *ParkingRepository {
	return &ParkingRepository{
		dao: dao,
	}
}

func (r *ParkingRepository) FindAllFloors(ctx context.Context) ([]domain.Floor, error) {
	found, err := r.dao.FindAllFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllFloors -> %w", err)
	}

	floors := make([]domain.Floor, 0, len(found))
	for _, f := range found {
		floors = append(floors, domain.Floor{
			ID:   f.ID,
			Name: f.Name,
		})
	}

	return floors, nil
}

func (r *ParkingRepository) FindRowsByFloorID(ctx context.Context, floorID uint) ([]domain.Row, error) {
	found, err := r.dao.FindRowsByFloorID(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRowsByFloorID -> %w", err)
	}

	rows := make([]domain.Row, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.Row{
			ID:      row.ID,
			FloorID: row.FloorID,
			Name:    row.Name,
		})
	}

	return rows, nil
}

func (r *ParkingRepository) FindSlotsByRowID(ctx context.Context, rowID uint) ([]domain.Slot, error) {
	found, err := r.dao.FindSlotsByRowID(ctx, rowID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSlotsByRowID -> %w", err)
	}

	slots := make([]domain.Slot, 0, len(found))
	for _, s := range found {
		slots = append(slots, r.slotDaoToDomain(s))
	}

	return slots, nil
}

func (r *ParkingRepository) AllocateFirstFree(ctx context.Context, vehicleRegNo string, makeTicket func(slotID uint) string) (domain.Slot, error) {
	allocated, err := r.dao.AllocateFirstFree(ctx, vehicleRegNo, makeTicket)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.AllocateFirstFree -> %w", err)
	}

	return r.slotDaoToDomain(allocated), nil
}

func (r *ParkingRepository) ReleaseByTicket(ctx context.Context, ticketID string) (domain.Slot, error) {
	released, err := r.dao.ReleaseByTicket(ctx, ticketID)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.ReleaseByTicket -> %w", err)
	}

	return r.slotDaoToDomain(released), nil
}

func (r *ParkingRepository) slotDaoToDomain(s dao.Slot) domain.Slot {
	return domain.Slot{
		ID:           s.ID,
		RowID:        s.RowID,
		Name:         s.Name,
		Status:       domain.SlotStatus(s.Status),
		VehicleRegNo: s.VehicleRegNo,
		TicketID:     s.TicketID,
		UserID:       s.UserID,
	}
}
