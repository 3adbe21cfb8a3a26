package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type ChangePriorityCommand struct {
	TicketID    uint
	NewPriority string
	ChangedBy   uint
}

type ChangePriorityResult struct {
	TicketID    uint   `json:"ticket_id"`
	OldPriority string `json:"old_priority"`
	NewPriority string `json:"new_priority"`
}

type ChangePriorityUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangePriorityUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newPriority, err := vo.NewPriority(cmd.NewPriority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldPriority := t.Priority()

	if err := t.ChangePriority(newPriority, cmd.ChangedBy); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	return &ChangePriorityResult{
		TicketID:    t.ID(),
		OldPriority: oldPriority.String(),
		NewPriority: t.Priority().String(),
	}, nil
}
