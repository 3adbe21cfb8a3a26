package usecases

import (
	"context"

	"parley/internal/domain/tag"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type CreateTagCommand struct {
	Name  string
	Color string
}

type CreateTagResult struct {
	TagID uint   `json:"tag_id"`
	Name  string `json:"name"`
}

type CreateTagUseCase struct {
	tagRepo tag.TagRepository
	logger  logger.Interface
}

func NewCreateTagUseCase(tagRepo tag.TagRepository, logger logger.Interface) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, cmd CreateTagCommand) (*CreateTagResult, error) {
	uc.logger.Infow("executing create tag use case", "name", cmd.Name)

	t, err := tag.NewTag(cmd.Name, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Uniqueness is case-insensitive: "Billing" and "billing" are one tag.
	if existing, err := uc.tagRepo.GetByNormalizedName(ctx, t.NormalizedName()); err == nil && existing != nil {
		return nil, errors.NewConflictError("a tag with this name already exists")
	}

	if err := uc.tagRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save tag", "name", t.Name(), "error", err)
		return nil, errors.NewInternalError("failed to save tag")
	}

	uc.logger.Infow("tag created", "tag_id", t.ID(), "name", t.Name())

	return &CreateTagResult{TagID: t.ID(), Name: t.Name()}, nil
}
