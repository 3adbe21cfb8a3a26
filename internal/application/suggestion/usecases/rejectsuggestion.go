package usecases

import (
	"context"

	"parley/internal/domain/suggestion"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type RejectSuggestionCommand struct {
	SuggestionID uint
	Reason       string
	RejectedBy   uint
}

type RejectSuggestionResult struct {
	SuggestionID uint   `json:"suggestion_id"`
	Reason       string `json:"reason"`
}

// RejectSuggestionUseCase terminates a pending suggestion with a feedback
// record explaining why the match was off.
type RejectSuggestionUseCase struct {
	suggestionRepo suggestion.SuggestionRepository
	feedbackRepo   suggestion.FeedbackRepository
	logger         logger.Interface
}

func NewRejectSuggestionUseCase(
	suggestionRepo suggestion.SuggestionRepository,
	feedbackRepo suggestion.FeedbackRepository,
	logger logger.Interface,
) *RejectSuggestionUseCase {
	return &RejectSuggestionUseCase{
		suggestionRepo: suggestionRepo,
		feedbackRepo:   feedbackRepo,
		logger:         logger,
	}
}

func (uc *RejectSuggestionUseCase) Execute(ctx context.Context, cmd RejectSuggestionCommand) (*RejectSuggestionResult, error) {
	uc.logger.Infow("executing reject suggestion use case",
		"suggestion_id", cmd.SuggestionID,
		"reason", cmd.Reason)

	if cmd.SuggestionID == 0 {
		return nil, errors.NewValidationError("suggestion ID is required")
	}

	reason := suggestion.RejectionReason(cmd.Reason)
	if !reason.IsValid() {
		return nil, errors.NewValidationError("invalid rejection reason")
	}

	sg, err := uc.suggestionRepo.GetByID(ctx, cmd.SuggestionID)
	if err != nil {
		return nil, errors.NewNotFoundError("suggestion not found")
	}

	if err := sg.Reject(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	feedback, err := suggestion.NewFeedback(sg.ID(), sg.TicketID(), reason)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.suggestionRepo.Update(ctx, sg); err != nil {
		uc.logger.Errorw("failed to update suggestion", "error", err)
		return nil, errors.NewInternalError("failed to update suggestion")
	}

	if err := uc.feedbackRepo.Save(ctx, feedback); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, errors.NewInternalError("failed to save feedback")
	}

	uc.logger.Infow("suggestion rejected",
		"suggestion_id", sg.ID(),
		"reason", reason.String())

	return &RejectSuggestionResult{
		SuggestionID: sg.ID(),
		Reason:       reason.String(),
	}, nil
}
