package suggestion

type GenerateSuggestionRequest struct {
	TicketID uint `json:"ticket_id" binding:"required"`
}

type RejectSuggestionRequest struct {
	Reason string `json:"reason" binding:"required,oneof=not_relevant incorrect other"`
}
