package response

type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type UpdateUserResponse struct {
	Message string `json:"message"`
}
