package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title    string
	Content  string
	IsPublic bool
	AuthorID uint
}

type CreateArticleResult struct {
	ArticleID uint `json:"article_id"`
}

type CreateArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	embedder    Embedder
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	embedder Embedder,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		embedder:    embedder,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	article, err := knowledge.NewArticle(cmd.Title, cmd.Content, cmd.IsPublic, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Embedding failures are not fatal: the article stays dirty and is
	// re-embedded on the next content update.
	if embedding, err := uc.embedder.Embed(ctx, article.EmbeddingInput()); err != nil {
		uc.logger.Warnw("failed to embed article, saving without embedding", "error", err)
	} else if err := article.SetEmbedding(embedding); err != nil {
		uc.logger.Warnw("rejected embedding from model", "error", err)
	}

	if err := uc.articleRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "error", err)
		return nil, errors.NewInternalError("failed to save article")
	}

	uc.logger.Infow("article created", "article_id", article.ID())

	return &CreateArticleResult{ArticleID: article.ID()}, nil
}
