package usecases

import (
	"context"

	"parley/internal/domain/tag"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type UpdateTagCommand struct {
	TagID uint
	Name  string
	Color string
}

type UpdateTagResult struct {
	TagID uint   `json:"tag_id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateTagUseCase struct {
	tagRepo tag.TagRepository
	logger  logger.Interface
}

func NewUpdateTagUseCase(tagRepo tag.TagRepository, logger logger.Interface) *UpdateTagUseCase {
	return &UpdateTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *UpdateTagUseCase) Execute(ctx context.Context, cmd UpdateTagCommand) (*UpdateTagResult, error) {
	uc.logger.Infow("executing update tag use case", "tag_id", cmd.TagID)

	t, err := uc.tagRepo.GetByID(ctx, cmd.TagID)
	if err != nil {
		return nil, errors.NewNotFoundError("tag not found")
	}

	if cmd.Name != "" && tag.NormalizeName(cmd.Name) != t.NormalizedName() {
		if existing, err := uc.tagRepo.GetByNormalizedName(ctx, tag.NormalizeName(cmd.Name)); err == nil && existing != nil {
			return nil, errors.NewConflictError("a tag with this name already exists")
		}
		if err := t.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Color != "" {
		if err := t.ChangeColor(cmd.Color); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.tagRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update tag", "tag_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update tag")
	}

	return &UpdateTagResult{TagID: t.ID(), Name: t.Name(), Color: t.Color()}, nil
}
