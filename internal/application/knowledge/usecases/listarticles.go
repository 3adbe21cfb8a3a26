package usecases

import (
	"context"

	"parley/internal/application/knowledge/dto"
	"parley/internal/domain/knowledge"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/utils"
)

type ListArticlesQuery struct {
	RequesterRole string
	Page          int
	PageSize      int
}

type ListArticlesResult struct {
	Articles []*dto.ArticleDTO `json:"articles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type ListArticlesUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewListArticlesUseCase(articleRepo knowledge.ArticleRepository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	page, pageSize := utils.NormalizePagination(query.Page, query.PageSize)

	publicOnly := !authorization.ParseUserRole(query.RequesterRole).IsStaff()

	articles, total, err := uc.articleRepo.List(ctx, publicOnly, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, errors.NewInternalError("failed to list articles")
	}

	return &ListArticlesResult{
		Articles: dto.FromArticles(articles),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
