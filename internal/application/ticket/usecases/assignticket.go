package usecases

import (
	"context"

	"parley/internal/domain/shared/events"
	"parley/internal/domain/ticket"
	"parley/internal/shared/biztime"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
}

type AssignTicketResult struct {
	TicketID   uint   `json:"ticket_id"`
	AssigneeID uint   `json:"assignee_id"`
	Status     string `json:"status"`
}

type AssignTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:      ticketRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}
	if cmd.AssignedBy == 0 {
		return nil, errors.NewValidationError("assigned by ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.AssignTo(cmd.AssigneeID, cmd.AssignedBy); err != nil {
		uc.logger.Errorw("failed to assign ticket", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	event := ticket.NewTicketAssignedEvent(
		t.ID(), t.Number(), t.Title(),
		cmd.AssigneeID, cmd.AssignedBy,
		biztime.NowUTC(),
	)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to dispatch assignment event", "error", err)
	}

	uc.logger.Infow("ticket assigned successfully",
		"ticket_id", t.ID(),
		"assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
		Status:     t.Status().String(),
	}, nil
}
