package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type DeleteMessageCommand struct {
	MessageID     uint
	RequesterID   uint
	RequesterRole string
}

type DeleteMessageResult struct {
	MessageID uint `json:"message_id"`
}

type DeleteMessageUseCase struct {
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewDeleteMessageUseCase(
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, cmd DeleteMessageCommand) (*DeleteMessageResult, error) {
	if cmd.MessageID == 0 {
		return nil, errors.NewValidationError("message ID is required")
	}

	m, err := uc.messageRepo.GetByID(ctx, cmd.MessageID)
	if err != nil {
		return nil, errors.NewNotFoundError("message not found")
	}

	if !m.CanBeDeletedBy(cmd.RequesterID, cmd.RequesterRole) {
		return nil, errors.NewForbiddenError("only the message's author can delete it")
	}

	if err := uc.messageRepo.Delete(ctx, cmd.MessageID); err != nil {
		uc.logger.Errorw("failed to delete message", "error", err, "message_id", cmd.MessageID)
		return nil, errors.NewInternalError("failed to delete message")
	}

	return &DeleteMessageResult{MessageID: cmd.MessageID}, nil
}
