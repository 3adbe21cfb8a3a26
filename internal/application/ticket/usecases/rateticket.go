package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketID uint
	Rating   int
	RatedBy  uint
}

type RateTicketResult struct {
	TicketID uint `json:"ticket_id"`
	Rating   int  `json:"rating"`
}

type RateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewRateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.RatedBy == 0 {
		return nil, errors.NewValidationError("rater ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.Rate(cmd.Rating, cmd.RatedBy); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket rated", "ticket_id", t.ID(), "rating", cmd.Rating)

	return &RateTicketResult{
		TicketID: t.ID(),
		Rating:   cmd.Rating,
	}, nil
}
