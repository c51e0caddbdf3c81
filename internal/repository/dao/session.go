package dao

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// ParkingSession is migrated alongside the other tables but no endpoint
// writes to it yet. Tickets are tracked on the slot row; this table is the
// landing spot for park/release history once that feature is built out.
type ParkingSession struct {
	TicketID     string `gorm:"primaryKey;size:30"`
	SlotID       uint   `gorm:"not null"`
	VehicleRegNo string `gorm:"size:20"`
	StartTime    time.Time
	EndTime      null.Time
	UserID       null.Int
}
