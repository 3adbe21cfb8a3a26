package usecases

import (
	"context"

	"parley/internal/application/ticket/dto"
	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type ListNotesQuery struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type ListNotesUseCase struct {
	noteRepo ticket.NoteRepository
	logger   logger.Interface
}

func NewListNotesUseCase(
	noteRepo ticket.NoteRepository,
	logger logger.Interface,
) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Execute lists a ticket's notes, filtered down to the ones the requester is
// allowed to read.
func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]*dto.NoteDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	notes, err := uc.noteRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to list notes")
	}

	visible := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		if n.CanBeViewedBy(query.RequesterID, query.RequesterRole) {
			visible = append(visible, dto.FromNote(n))
		}
	}
	return visible, nil
}
