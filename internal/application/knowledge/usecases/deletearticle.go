package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID     uint
	RequesterRole string
}

type DeleteArticleResult struct {
	ArticleID uint `json:"article_id"`
}

type DeleteArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(articleRepo knowledge.ArticleRepository, logger logger.Interface) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error) {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID)

	if !authorization.ParseUserRole(cmd.RequesterRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can delete articles")
	}

	if _, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID); err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "article_id", cmd.ArticleID, "error", err)
		return nil, errors.NewInternalError("failed to delete article")
	}

	uc.logger.Infow("article deleted", "article_id", cmd.ArticleID)

	return &DeleteArticleResult{ArticleID: cmd.ArticleID}, nil
}
