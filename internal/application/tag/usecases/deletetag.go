package usecases

import (
	"context"

	"parley/internal/domain/tag"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type DeleteTagCommand struct {
	TagID         uint
	RequesterRole string
}

type DeleteTagResult struct {
	TagID uint `json:"tag_id"`
}

type DeleteTagUseCase struct {
	tagRepo tag.TagRepository
	logger  logger.Interface
}

func NewDeleteTagUseCase(tagRepo tag.TagRepository, logger logger.Interface) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *DeleteTagUseCase) Execute(ctx context.Context, cmd DeleteTagCommand) (*DeleteTagResult, error) {
	uc.logger.Infow("executing delete tag use case", "tag_id", cmd.TagID)

	if !authorization.ParseUserRole(cmd.RequesterRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can delete tags")
	}

	if _, err := uc.tagRepo.GetByID(ctx, cmd.TagID); err != nil {
		return nil, errors.NewNotFoundError("tag not found")
	}

	if err := uc.tagRepo.Delete(ctx, cmd.TagID); err != nil {
		uc.logger.Errorw("failed to delete tag", "tag_id", cmd.TagID, "error", err)
		return nil, errors.NewInternalError("failed to delete tag")
	}

	uc.logger.Infow("tag deleted", "tag_id", cmd.TagID)

	return &DeleteTagResult{TagID: cmd.TagID}, nil
}
