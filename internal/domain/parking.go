package domain

import (
	"gopkg.in/guregu/null.v4"
)

type SlotStatus int

const (
	SlotOccupied SlotStatus = 0
	SlotFree     SlotStatus = 1
	SlotNotInUse SlotStatus = 2
)

type Floor struct {
	ID   uint   `json:"floor_id"`
	Name string `json:"floor_name"`
}

type Row struct {
	ID      uint   `json:"row_id"`
	FloorID uint   `json:"floor_id"`
	Name    string `json:"row_name"`
}

type Slot struct {
	ID           uint        `json:"slot_id"`
	RowID        uint        `json:"-"`
	Name         string      `json:"slot_name"`
	Status       SlotStatus  `json:"status"`
	VehicleRegNo null.String `json:"vehicle_reg_no"`
	TicketID     null.String `json:"ticket_id"`
	UserID       null.Int    `json:"user_id"`
}

// ParkingLot is the wire shape of the whole facility,
// keyed by floor name, then row name.
type ParkingLot map[string]map[string][]Slot
