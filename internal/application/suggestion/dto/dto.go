package dto

import (
	"time"

	"parley/internal/domain/suggestion"
)

type SuggestionDTO struct {
	ID               uint      `json:"id"`
	TicketID         uint      `json:"ticket_id"`
	Response         string    `json:"response"`
	Confidence       float64   `json:"confidence"`
	Status           string    `json:"status"`
	Model            string    `json:"model"`
	SourceArticleIDs []uint    `json:"source_article_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromSuggestion(s *suggestion.Suggestion) *SuggestionDTO {
	return &SuggestionDTO{
		ID:               s.ID(),
		TicketID:         s.TicketID(),
		Response:         s.Response(),
		Confidence:       s.Confidence(),
		Status:           s.Status().String(),
		Model:            s.Model(),
		SourceArticleIDs: s.SourceArticleIDs(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func FromSuggestions(suggestions []*suggestion.Suggestion) []*SuggestionDTO {
	dtos := make([]*SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		dtos = append(dtos, FromSuggestion(s))
	}
	return dtos
}
