package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type DeleteNoteCommand struct {
	NoteID      uint
	RequesterID uint
}

type DeleteNoteResult struct {
	NoteID uint `json:"note_id"`
}

type DeleteNoteUseCase struct {
	noteRepo ticket.NoteRepository
	logger   logger.Interface
}

func NewDeleteNoteUseCase(
	noteRepo ticket.NoteRepository,
	logger logger.Interface,
) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) (*DeleteNoteResult, error) {
	if cmd.NoteID == 0 {
		return nil, errors.NewValidationError("note ID is required")
	}

	note, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return nil, errors.NewNotFoundError("note not found")
	}

	if !note.CanBeDeletedBy(cmd.RequesterID) {
		return nil, errors.NewForbiddenError("only the note's author can delete it")
	}

	if err := uc.noteRepo.Delete(ctx, cmd.NoteID); err != nil {
		uc.logger.Errorw("failed to delete note", "error", err, "note_id", cmd.NoteID)
		return nil, errors.NewInternalError("failed to delete note")
	}

	return &DeleteNoteResult{NoteID: cmd.NoteID}, nil
}
