package usecases

import (
	"context"

	"parley/internal/domain/shared/events"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/biztime"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type ChangeStatusUseCase struct {
	ticketRepo      ticket.TicketRepository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:      ticketRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", cmd.NewStatus,
		"changed_by", cmd.ChangedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus, cmd.ChangedBy); err != nil {
		uc.logger.Errorw("status transition rejected", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	event := ticket.NewTicketStatusChangedEvent(
		t.ID(), t.Number(), t.Title(),
		oldStatus.String(), t.Status().String(),
		cmd.ChangedBy,
		biztime.NowUTC(),
	)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to dispatch status change event", "error", err)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"old_status", oldStatus.String(),
		"new_status", t.Status().String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
	}, nil
}
