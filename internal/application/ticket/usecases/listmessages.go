package usecases

import (
	"context"

	"parley/internal/application/ticket/dto"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

// AttachmentURLResolver turns a storage path into a client-reachable URL.
type AttachmentURLResolver interface {
	PublicURL(storagePath string) string
}

type ListMessagesQuery struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type ListMessagesUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	urlResolver AttachmentURLResolver
	logger      logger.Interface
}

func NewListMessagesUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	urlResolver AttachmentURLResolver,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		urlResolver: urlResolver,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.RequesterID, query.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	messages, err := uc.messageRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to list messages")
	}

	var resolve func(string) string
	if uc.urlResolver != nil {
		resolve = uc.urlResolver.PublicURL
	}

	dtos := make([]*dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, dto.FromMessage(m, resolve))
	}
	return dtos, nil
}
