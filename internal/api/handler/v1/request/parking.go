package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errMissingVehicleRegNo = errors.New("Vehicle registration number is required.")

type ParkCarRequest struct {
	VehicleRegNo string `json:"vehicle_reg_no"`
}

func (req *ParkCarRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.VehicleRegNo, validation.Required),
	)
	if err != nil {
		return errMissingVehicleRegNo
	}

	return nil
}
