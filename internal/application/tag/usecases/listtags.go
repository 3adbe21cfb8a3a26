package usecases

import (
	"context"

	"parley/internal/application/tag/dto"
	"parley/internal/domain/tag"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type ListTagsUseCase struct {
	tagRepo tag.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo tag.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, errors.NewInternalError("failed to list tags")
	}
	return dto.FromTags(tags), nil
}
