package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/domain/suggestion"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type AcceptSuggestionCommand struct {
	SuggestionID uint
	AcceptedBy   uint
}

type AcceptSuggestionResult struct {
	SuggestionID uint `json:"suggestion_id"`
	MessageID    uint `json:"message_id"`
	TicketID     uint `json:"ticket_id"`
}

// AcceptSuggestionUseCase terminates a pending suggestion and posts its
// response as a knowledge-base referral message on the ticket.
type AcceptSuggestionUseCase struct {
	suggestionRepo suggestion.SuggestionRepository
	messageRepo    ticket.MessageRepository
	articleRepo    knowledge.ArticleRepository
	logger         logger.Interface
}

func NewAcceptSuggestionUseCase(
	suggestionRepo suggestion.SuggestionRepository,
	messageRepo ticket.MessageRepository,
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *AcceptSuggestionUseCase {
	return &AcceptSuggestionUseCase{
		suggestionRepo: suggestionRepo,
		messageRepo:    messageRepo,
		articleRepo:    articleRepo,
		logger:         logger,
	}
}

func (uc *AcceptSuggestionUseCase) Execute(ctx context.Context, cmd AcceptSuggestionCommand) (*AcceptSuggestionResult, error) {
	uc.logger.Infow("executing accept suggestion use case",
		"suggestion_id", cmd.SuggestionID,
		"accepted_by", cmd.AcceptedBy)

	if cmd.SuggestionID == 0 {
		return nil, errors.NewValidationError("suggestion ID is required")
	}
	if cmd.AcceptedBy == 0 {
		return nil, errors.NewValidationError("accepting user ID is required")
	}

	sg, err := uc.suggestionRepo.GetByID(ctx, cmd.SuggestionID)
	if err != nil {
		return nil, errors.NewNotFoundError("suggestion not found")
	}

	if err := sg.Accept(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	articleTitle := "Knowledge base article"
	if articleID := sg.PrimaryArticleID(); articleID != 0 {
		if article, err := uc.articleRepo.GetByID(ctx, articleID); err == nil {
			articleTitle = article.Title()
		}
	}

	content, err := vo.NewKBReferralContent(sg.Response(), sg.PrimaryArticleID(), articleTitle)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	message, err := ticket.NewMessage(sg.TicketID(), cmd.AcceptedBy, content, true, nil)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save referral message", "error", err)
		return nil, errors.NewInternalError("failed to save referral message")
	}

	if err := uc.suggestionRepo.Update(ctx, sg); err != nil {
		uc.logger.Errorw("failed to update suggestion", "error", err)
		return nil, errors.NewInternalError("failed to update suggestion")
	}

	uc.logger.Infow("suggestion accepted",
		"suggestion_id", sg.ID(),
		"message_id", message.ID(),
		"ticket_id", sg.TicketID())

	return &AcceptSuggestionResult{
		SuggestionID: sg.ID(),
		MessageID:    message.ID(),
		TicketID:     sg.TicketID(),
	}, nil
}
