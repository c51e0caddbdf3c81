package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gopkg.in/guregu/null.v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot.Status values. The status column is the sole source of truth
// for occupancy; vehicle_reg_no and ticket_id follow it by convention.
const (
	SlotOccupied = 0
	SlotFree     = 1
	SlotNotInUse = 2
)

var (
	ErrNoFreeSlot     = errors.New("no available slots")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrIntegrity      = errors.New("database integrity error")
)

type Floor struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50"`
}

// Rows and slots carry plain foreign-key columns; all navigation is
// query-driven, there is no in-memory association graph.
type Row struct {
	ID      uint   `gorm:"primaryKey"`
	FloorID uint   `gorm:"not null;index"`
	Name    string `gorm:"size:50"`
}

type Slot struct {
	ID           uint        `gorm:"primaryKey"`
	RowID        uint        `gorm:"not null;index"`
	Name         string      `gorm:"size:50"`
	Status       int         `gorm:"not null;default:1"`
	VehicleRegNo null.String `gorm:"size:20"`
	TicketID     null.String `gorm:"size:30;index"`
	UserID       null.Int
}

type ParkingDAO struct {
	db *gorm.DB
}

func NewParkingDAO(db *gorm.DB) *ParkingDAO {
	return &ParkingDAO{
		db: db,
	}
}

func (d *ParkingDAO) FindAllFloors(ctx context.Context) ([]Floor, error) {
	var floors []Floor

	result := d.db.WithContext(ctx).Find(&floors)
	if result.Error != nil {
		return nil, result.Error
	}

	return floors, nil
}

func (d *ParkingDAO) FindRowsByFloorID(ctx context.Context, floorID uint) ([]Row, error) {
	var rows []Row

	result := d.db.WithContext(ctx).Where("floor_id = ?", floorID).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ParkingDAO) FindSlotsByRowID(ctx context.Context, rowID uint) ([]Slot, error) {
	var slots []Slot

	result := d.db.WithContext(ctx).Where("row_id = ?", rowID).Find(&slots)
	if result.Error != nil {
		return nil, result.Error
	}

	return slots, nil
}

// AllocateFirstFree marks the lowest-id free slot as occupied by the given
// vehicle. The ticket id depends on the chosen slot, so the caller supplies
// makeTicket and it runs inside the transaction. The row is locked for the
// duration, so two concurrent park requests cannot claim the same slot.
func (d *ParkingDAO) AllocateFirstFree(ctx context.Context, vehicleRegNo string, makeTicket func(slotID uint) string) (Slot, error) {
	var slot Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", SlotFree).
			Order("id").
			First(&slot)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNoFreeSlot
			}

			return result.Error
		}

		slot.Status = SlotOccupied
		slot.VehicleRegNo = null.StringFrom(vehicleRegNo)
		slot.TicketID = null.StringFrom(makeTicket(slot.ID))

		if result = tx.Save(&slot); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		return Slot{}, classifyErr(err)
	}

	return slot, nil
}

// ReleaseByTicket frees the slot holding the given ticket and clears the
// vehicle registration and ticket columns.
func (d *ParkingDAO) ReleaseByTicket(ctx context.Context, ticketID string) (Slot, error) {
	var slot Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ticket_id = ?", ticketID).
			First(&slot)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}

			return result.Error
		}

		slot.Status = SlotFree
		slot.VehicleRegNo = null.String{}
		slot.TicketID = null.String{}

		if result = tx.Save(&slot); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		return Slot{}, classifyErr(err)
	}

	return slot, nil
}

// classifyErr maps postgres constraint violations to ErrIntegrity and
// passes everything else through unchanged.
func classifyErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return ErrIntegrity
	}

	return err
}
