package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type DeleteTicketResult struct {
	TicketID uint `json:"ticket_id"`
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !authorization.ParseUserRole(cmd.RequesterRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "deleted_by", cmd.RequesterID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
