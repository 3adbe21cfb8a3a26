package usecases

import (
	"context"
	"time"

	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID   uint
	AuthorID   uint
	AuthorRole string
	Body       string
	Visibility string
}

type AddNoteResult struct {
	NoteID    uint      `json:"note_id"`
	TicketID  uint      `json:"ticket_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddNoteUseCase struct {
	ticketRepo ticket.TicketRepository
	noteRepo   ticket.NoteRepository
	logger     logger.Interface
}

func NewAddNoteUseCase(
	ticketRepo ticket.TicketRepository,
	noteRepo ticket.NoteRepository,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		noteRepo:   noteRepo,
		logger:     logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !authorization.ParseUserRole(cmd.AuthorRole).IsStaff() {
		return nil, errors.NewForbiddenError("only staff can write notes")
	}

	visibility, err := vo.NewNoteVisibility(cmd.Visibility)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	note, err := ticket.NewNote(cmd.TicketID, cmd.AuthorID, cmd.Body, visibility)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Save(ctx, note); err != nil {
		uc.logger.Errorw("failed to save note", "error", err)
		return nil, errors.NewInternalError("failed to save note")
	}

	return &AddNoteResult{
		NoteID:    note.ID(),
		TicketID:  note.TicketID(),
		CreatedAt: note.CreatedAt(),
	}, nil
}
