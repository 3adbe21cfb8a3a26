package usecases

import (
	"context"

	"parley/internal/application/suggestion/dto"
)

// Embedder computes a vector embedding for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelName() string
}

// ResponseDrafter writes a suggested reply from a ticket and a matched
// article via chat completion.
type ResponseDrafter interface {
	DraftResponse(ctx context.Context, ticketTitle, ticketDescription, articleTitle, articleContent string) (string, error)
}

type GenerateSuggestionExecutor interface {
	Execute(ctx context.Context, cmd GenerateSuggestionCommand) (*GenerateSuggestionResult, error)
}

type ListActiveSuggestionsExecutor interface {
	Execute(ctx context.Context, query ListActiveSuggestionsQuery) ([]*dto.SuggestionDTO, error)
}

type AcceptSuggestionExecutor interface {
	Execute(ctx context.Context, cmd AcceptSuggestionCommand) (*AcceptSuggestionResult, error)
}

type RejectSuggestionExecutor interface {
	Execute(ctx context.Context, cmd RejectSuggestionCommand) (*RejectSuggestionResult, error)
}
