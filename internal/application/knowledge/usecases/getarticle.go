package usecases

import (
	"context"

	"parley/internal/application/knowledge/dto"
	"parley/internal/domain/knowledge"
	"parley/internal/shared/authorization"
	"parley/internal/shared/errors"
	"parley/internal/shared/logger"
	"parley/internal/shared/services/markdown"
)

type GetArticleQuery struct {
	ArticleID     uint
	RequesterRole string
	RenderHTML    bool
}

type GetArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	article, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	// Unpublished articles are internal drafts visible to staff only.
	if !article.IsPublic() && !authorization.ParseUserRole(query.RequesterRole).IsStaff() {
		return nil, errors.NewNotFoundError("article not found")
	}

	result := dto.FromArticle(article)
	if query.RenderHTML {
		rendered, err := uc.markdown.ToHTMLSanitized(article.Content())
		if err != nil {
			uc.logger.Warnw("failed to render article markdown", "article_id", article.ID(), "error", err)
		} else {
			result.HTML = rendered
		}
	}

	return result, nil
}
