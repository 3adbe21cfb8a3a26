package usecases

import (
	"context"
	"strings"

	"parley/internal/application/knowledge/dto"
	"parley/internal/domain/knowledge"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
)

const (
	defaultSearchLimit     = 5
	defaultSearchThreshold = 0.5
)

type SearchArticlesQuery struct {
	Query         string
	Limit         int
	RequesterRole string
}

type SearchArticlesUseCase struct {
	articleRepo knowledge.ArticleRepository
	embedder    Embedder
	logger      logger.Interface
}

func NewSearchArticlesUseCase(
	articleRepo knowledge.ArticleRepository,
	embedder Embedder,
	logger logger.Interface,
) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{
		articleRepo: articleRepo,
		embedder:    embedder,
		logger:      logger,
	}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, query SearchArticlesQuery) ([]*dto.SearchResultDTO, error) {
	text := strings.TrimSpace(query.Query)
	if text == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	limit := query.Limit
	if limit <= 0 || limit > 20 {
		limit = defaultSearchLimit
	}

	embedding, err := uc.embedder.Embed(ctx, text)
	if err != nil {
		uc.logger.Errorw("failed to embed search query", "error", err)
		return nil, errors.NewInternalError("failed to embed search query")
	}

	results, err := uc.articleRepo.SearchByEmbedding(ctx, embedding, limit, defaultSearchThreshold)
	if err != nil {
		uc.logger.Errorw("failed to search articles", "error", err)
		return nil, errors.NewInternalError("failed to search articles")
	}

	staff := authorization.ParseUserRole(query.RequesterRole).IsStaff()

	dtos := make([]*dto.SearchResultDTO, 0, len(results))
	for _, r := range results {
		if !staff && !r.Article.IsPublic() {
			continue
		}
		dtos = append(dtos, &dto.SearchResultDTO{
			Article:    dto.FromArticle(r.Article),
			Similarity: r.Similarity,
		})
	}

	return dtos, nil
}
