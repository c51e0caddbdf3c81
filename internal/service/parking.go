package service

import (
	"context"
	"fmt"
	"time"

	"github.com/citypark/parking-api/internal/domain"
	"github.com/citypark/parking-api/internal/repository"
)

var (
	ErrNoFreeSlot     = repository.ErrNoFreeSlot
	ErrTicketNotFound = repository.ErrTicketNotFound
	ErrIntegrity      = repository.ErrIntegrity
)

type ParkingRepository interface {
	FindAllFloors(ctx context.Context) ([]domain.Floor, error)
	FindRowsByFloorID(ctx context.Context, floorID uint) ([]domain.Row, error)
	FindSlotsByRowID(ctx context.Context, rowID uint) ([]domain.Slot, error)
	AllocateFirstFree(ctx context.Context, vehicleRegNo string, makeTicket func(slotID uint) string) (domain.Slot, error)
	ReleaseByTicket(ctx context.Context, ticketID string) (domain.Slot, error)
}

type ParkingService struct {
	repo ParkingRepository
	now  func() time.Time
}

func NewParkingService(repo ParkingRepository) *ParkingService {
	return &ParkingService{
		repo: repo,
		now:  time.Now,
	}
}

// GetParkingLot loads the whole facility as floor name -> row name -> slots.
func (s *ParkingService) GetParkingLot(ctx context.Context) (domain.ParkingLot, error) {
	floors, err := s.repo.FindAllFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllFloors -> %w", err)
	}

	lot := make(domain.ParkingLot, len(floors))
	for _, floor := range floors {
		rows, err := s.repo.FindRowsByFloorID(ctx, floor.ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindRowsByFloorID -> %w", err)
		}

		rowsData := make(map[string][]domain.Slot, len(rows))
		for _, row := range rows {
			slots, err := s.repo.FindSlotsByRowID(ctx, row.ID)
			if err != nil {
				return nil, fmt.Errorf("s.repo.FindSlotsByRowID -> %w", err)
			}

			rowsData[row.Name] = slots
		}

		lot[floor.Name] = rowsData
	}

	return lot, nil
}

// ParkCar puts the vehicle into the first free slot and returns the issued
// ticket id.
func (s *ParkingService) ParkCar(ctx context.Context, vehicleRegNo string) (string, error) {
	slot, err := s.repo.AllocateFirstFree(ctx, vehicleRegNo, s.ticketID)
	if err != nil {
		return "", fmt.Errorf("s.repo.AllocateFirstFree -> %w", err)
	}

	return slot.TicketID.String, nil
}

// RemoveCarByTicket frees the slot holding the given ticket.
func (s *ParkingService) RemoveCarByTicket(ctx context.Context, ticketID string) error {
	if _, err := s.repo.ReleaseByTicket(ctx, ticketID); err != nil {
		return fmt.Errorf("s.repo.ReleaseByTicket -> %w", err)
	}

	return nil
}

// ticketID formats the legacy ticket identifier, e.g.
// TICKET-20240101100000-7 for slot 7 at 2024-01-01T10:00:00Z.
func (s *ParkingService) ticketID(slotID uint) string {
	return fmt.Sprintf("TICKET-%v-%v", s.now().UTC().Format("20060102150405"), slotID)
}
