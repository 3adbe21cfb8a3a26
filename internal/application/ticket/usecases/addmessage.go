package usecases

import (
	"context"
	"time"

	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/authorization"
	"parley/internal/shared/biztime"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type AddMessageCommand struct {
	TicketID    uint
	AuthorID    uint
	AuthorRole  string
	Text        string
	AIGenerated bool
	Attachments []ticket.Attachment
}

type AddMessageResult struct {
	MessageID uint      `json:"message_id"`
	TicketID  uint      `json:"ticket_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	uc.logger.Infow("executing add message use case",
		"ticket_id", cmd.TicketID,
		"author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.AuthorID, cmd.AuthorRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	content, err := vo.NewPlainContent(cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	message, err := ticket.NewMessage(cmd.TicketID, cmd.AuthorID, content, cmd.AIGenerated, cmd.Attachments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save message", "error", err)
		return nil, errors.NewInternalError("failed to save message")
	}

	// The first staff reply stamps the ticket's first-response time.
	isStaff := authorization.ParseUserRole(cmd.AuthorRole).IsStaff()
	if isStaff && !t.HasFirstResponse() {
		t.MarkFirstResponse(biztime.NowUTC())
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Warnw("failed to record first response", "error", err, "ticket_id", t.ID())
		}
	}

	uc.logger.Infow("message added", "message_id", message.ID(), "ticket_id", t.ID())

	return &AddMessageResult{
		MessageID: message.ID(),
		TicketID:  t.ID(),
		CreatedAt: message.CreatedAt(),
	}, nil
}
