package usecases

import (
	"context"

	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type UpdateNoteCommand struct {
	NoteID      uint
	Body        string
	Visibility  string
	RequesterID uint
}

type UpdateNoteResult struct {
	NoteID uint `json:"note_id"`
}

type UpdateNoteUseCase struct {
	noteRepo ticket.NoteRepository
	logger   logger.Interface
}

func NewUpdateNoteUseCase(
	noteRepo ticket.NoteRepository,
	logger logger.Interface,
) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) (*UpdateNoteResult, error) {
	if cmd.NoteID == 0 {
		return nil, errors.NewValidationError("note ID is required")
	}

	note, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return nil, errors.NewNotFoundError("note not found")
	}

	if len(cmd.Body) > 0 {
		if err := note.UpdateBody(cmd.Body, cmd.RequesterID); err != nil {
			return nil, errors.NewForbiddenError(err.Error())
		}
	}

	if len(cmd.Visibility) > 0 {
		visibility, err := vo.NewNoteVisibility(cmd.Visibility)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := note.ChangeVisibility(visibility, cmd.RequesterID); err != nil {
			return nil, errors.NewForbiddenError(err.Error())
		}
	}

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		uc.logger.Errorw("failed to update note", "error", err, "note_id", cmd.NoteID)
		return nil, errors.NewInternalError("failed to update note")
	}

	return &UpdateNoteResult{NoteID: note.ID()}, nil
}
