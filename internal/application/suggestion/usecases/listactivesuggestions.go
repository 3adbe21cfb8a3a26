package usecases

import (
	"context"

	"parley/internal/application/suggestion/dto"
	"parley/internal/domain/suggestion"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type ListActiveSuggestionsQuery struct {
	TicketID uint
}

type ListActiveSuggestionsUseCase struct {
	suggestionRepo suggestion.SuggestionRepository
	logger         logger.Interface
}

func NewListActiveSuggestionsUseCase(
	suggestionRepo suggestion.SuggestionRepository,
	logger logger.Interface,
) *ListActiveSuggestionsUseCase {
	return &ListActiveSuggestionsUseCase{
		suggestionRepo: suggestionRepo,
		logger:         logger,
	}
}

func (uc *ListActiveSuggestionsUseCase) Execute(ctx context.Context, query ListActiveSuggestionsQuery) ([]*dto.SuggestionDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	suggestions, err := uc.suggestionRepo.GetActiveByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list suggestions", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to list suggestions")
	}

	return dto.FromSuggestions(suggestions), nil
}
