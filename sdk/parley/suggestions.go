package parley

import (
	"context"
	"fmt"
	"net/http"
)

// GenerateSuggestionResult reports the outcome of an on-demand draft.
type GenerateSuggestionResult struct {
	SuggestionID uint    `json:"suggestion_id"`
	TicketID     uint    `json:"ticket_id"`
	Confidence   float64 `json:"confidence"`
	// Skipped is true when no draft was produced, e.g. no knowledge
	// base article cleared the similarity threshold.
	Skipped bool `json:"skipped"`
}

// AcceptSuggestionResult reports the message the accepted draft became.
type AcceptSuggestionResult struct {
	SuggestionID uint `json:"suggestion_id"`
	MessageID    uint `json:"message_id"`
	TicketID     uint `json:"ticket_id"`
}

// GenerateSuggestion asks the server to draft a reply for a ticket now,
// instead of waiting for the background worker.
func (c *Client) GenerateSuggestion(ctx context.Context, ticketID uint) (*GenerateSuggestionResult, error) {
	body := map[string]uint{"ticket_id": ticketID}
	var result GenerateSuggestionResult
	if err := c.do(ctx, http.MethodPost, "/suggestions/generate", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListActiveSuggestions returns the pending suggestions for a ticket.
func (c *Client) ListActiveSuggestions(ctx context.Context, ticketID uint) ([]Suggestion, error) {
	var suggestions []Suggestion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/suggestions", ticketID), nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// AcceptSuggestion posts the draft into the ticket conversation.
func (c *Client) AcceptSuggestion(ctx context.Context, suggestionID uint) (*AcceptSuggestionResult, error) {
	var result AcceptSuggestionResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/suggestions/%d/accept", suggestionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RejectSuggestion discards the draft with a reason.
func (c *Client) RejectSuggestion(ctx context.Context, suggestionID uint, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/suggestions/%d/reject", suggestionID), body, nil)
}
