package suggestion

import "context"

type SuggestionRepository interface {
	Save(ctx context.Context, suggestion *Suggestion) error
	Update(ctx context.Context, suggestion *Suggestion) error
	GetByID(ctx context.Context, suggestionID uint) (*Suggestion, error)
	// GetActiveByTicketID returns pending suggestions only; terminal
	// suggestions are excluded from active reads.
	GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*Suggestion, error)
	ExistsForTicket(ctx context.Context, ticketID uint) (bool, error)
}

type FeedbackRepository interface {
	Save(ctx context.Context, feedback *Feedback) error
	GetBySuggestionID(ctx context.Context, suggestionID uint) ([]*Feedback, error)
}
