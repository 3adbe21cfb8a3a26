package usecases

import (
	"context"

	"parley/internal/application/ticket/dto"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.RequesterID, query.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.FromTicket(t), nil
}
