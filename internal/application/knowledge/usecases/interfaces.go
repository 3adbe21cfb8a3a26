package usecases

import (
	"context"

	"parley/internal/application/knowledge/dto"
)

// Embedder computes a vector embedding for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelName() string
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error)
}

type SearchArticlesExecutor interface {
	Execute(ctx context.Context, query SearchArticlesQuery) ([]*dto.SearchResultDTO, error)
}
