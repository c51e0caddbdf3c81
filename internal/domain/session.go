package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// ParkingSession records a park-to-release interval. The table exists and is
// migrated, but no endpoint writes to it yet; tickets live on the slot itself.
type ParkingSession struct {
	TicketID     string    `json:"ticket_id"`
	SlotID       uint      `json:"slot_id"`
	VehicleRegNo string    `json:"vehicle_reg_no"`
	StartTime    time.Time `json:"start_time"`
	EndTime      null.Time `json:"end_time"`
	UserID       null.Int  `json:"user_id"`
}
