package domain

type User struct {
	ID             uint   `json:"user_id"`
	Name           string `json:"user_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	RegistrationNo string `json:"registration_no"`
}

// UserPatch carries a partial update. Nil fields keep the stored value.
type UserPatch struct {
	Name           *string
	Email          *string
	PhoneNumber    *string
	Address        *string
	RegistrationNo *string
}
