package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateUserRequest struct {
	UserName       string `json:"user_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	RegistrationNo string `json:"registration_no"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserName, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.PhoneNumber, validation.Required),
		validation.Field(&req.Address, validation.Required),
		validation.Field(&req.RegistrationNo, validation.Required),
	)
}

// UpdateUserRequest is a partial update. Absent fields stay nil and keep
// the stored values.
type UpdateUserRequest struct {
	UserName       *string `json:"user_name"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	Address        *string `json:"address"`
	RegistrationNo *string `json:"registration_no"`
}
