package response

type ParkCarResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
}

type RemoveCarResponse struct {
	Message string `json:"message"`
}
