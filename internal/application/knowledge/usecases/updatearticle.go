package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type UpdateArticleCommand struct {
	ArticleID uint
	Title     string
	Content   string
	IsPublic  bool
}

type UpdateArticleResult struct {
	ArticleID  uint `json:"article_id"`
	Reembedded bool `json:"reembedded"`
}

type UpdateArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	embedder    Embedder
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	embedder Embedder,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		embedder:    embedder,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID)

	article, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := article.UpdateContent(cmd.Title, cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	article.SetPublic(cmd.IsPublic)

	reembedded := false
	if article.NeedsEmbedding() {
		embedding, err := uc.embedder.Embed(ctx, article.EmbeddingInput())
		if err != nil {
			uc.logger.Warnw("failed to re-embed article, embedding left stale", "article_id", article.ID(), "error", err)
		} else if err := article.SetEmbedding(embedding); err != nil {
			uc.logger.Warnw("rejected embedding from model", "article_id", article.ID(), "error", err)
		} else {
			reembedded = true
		}
	}

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update article", "article_id", article.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update article")
	}

	uc.logger.Infow("article updated", "article_id", article.ID(), "reembedded", reembedded)

	return &UpdateArticleResult{ArticleID: article.ID(), Reembedded: reembedded}, nil
}
