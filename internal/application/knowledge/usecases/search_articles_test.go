package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/domain/knowledge"
	apperrors "parley/internal/shared/errors"
)

func TestSearchArticlesUseCase_Execute(t *testing.T) {
	t.Run("returns results ordered by similarity", func(t *testing.T) {
		var gotLimit int
		var gotThreshold float64

		articleRepo := &mockArticleRepository{
			SearchByEmbeddingFunc: func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
				gotLimit = limit
				gotThreshold = threshold
				return []knowledge.SearchResult{
					{Article: storedArticle(t, 1, "Password resets", "Click reset.", true), Similarity: 0.91},
					{Article: storedArticle(t, 2, "Account lockouts", "Wait ten minutes.", true), Similarity: 0.62},
				}, nil
			},
		}

		uc := NewSearchArticlesUseCase(articleRepo, &mockEmbedder{}, &mockLogger{})
		results, err := uc.Execute(context.Background(), SearchArticlesQuery{
			Query:         "cannot log in",
			Limit:         3,
			RequesterRole: "customer",
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, uint(1), results[0].Article.ID)
		assert.InDelta(t, 0.91, results[0].Similarity, 1e-9)
		assert.Equal(t, 3, gotLimit)
		assert.InDelta(t, 0.5, gotThreshold, 1e-9)
	})

	t.Run("filters unpublished articles for customers", func(t *testing.T) {
		articleRepo := &mockArticleRepository{
			SearchByEmbeddingFunc: func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
				return []knowledge.SearchResult{
					{Article: storedArticle(t, 1, "Public article", "visible", true), Similarity: 0.8},
					{Article: storedArticle(t, 2, "Internal runbook", "hidden", false), Similarity: 0.7},
				}, nil
			},
		}

		uc := NewSearchArticlesUseCase(articleRepo, &mockEmbedder{}, &mockLogger{})

		customerResults, err := uc.Execute(context.Background(), SearchArticlesQuery{
			Query:         "runbook",
			RequesterRole: "customer",
		})
		require.NoError(t, err)
		require.Len(t, customerResults, 1)
		assert.Equal(t, uint(1), customerResults[0].Article.ID)

		agentResults, err := uc.Execute(context.Background(), SearchArticlesQuery{
			Query:         "runbook",
			RequesterRole: "agent",
		})
		require.NoError(t, err)
		assert.Len(t, agentResults, 2)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		embedCalled := false
		embedder := &mockEmbedder{
			EmbedFunc: func(ctx context.Context, text string) ([]float32, error) {
				embedCalled = true
				return make([]float32, knowledge.EmbeddingDimensions), nil
			},
		}

		uc := NewSearchArticlesUseCase(&mockArticleRepository{}, embedder, &mockLogger{})
		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Query: "   "})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.False(t, embedCalled)
	})

	t.Run("embedding failure surfaces", func(t *testing.T) {
		embedder := &mockEmbedder{
			EmbedFunc: func(ctx context.Context, text string) ([]float32, error) {
				return nil, fmt.Errorf("rate limited")
			},
		}

		uc := NewSearchArticlesUseCase(&mockArticleRepository{}, embedder, &mockLogger{})
		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Query: "login"})

		require.Error(t, err)
	})
}

func TestGetArticleUseCase_Execute(t *testing.T) {
	t.Run("renders sanitized html on request", func(t *testing.T) {
		articleRepo := &mockArticleRepository{
			GetByIDFunc: func(ctx context.Context, articleID uint) (*knowledge.Article, error) {
				return storedArticle(t, 5, "Guide", "# Heading", true), nil
			},
		}
		md := &mockMarkdownService{
			ToHTMLSanitizedFunc: func(markdown string) (string, error) {
				assert.Equal(t, "# Heading", markdown)
				return "<h1>Heading</h1>", nil
			},
		}

		uc := NewGetArticleUseCase(articleRepo, md, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetArticleQuery{
			ArticleID:     5,
			RequesterRole: "customer",
			RenderHTML:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, "<h1>Heading</h1>", result.HTML)
		assert.Equal(t, "Guide", result.Title)
	})

	t.Run("hides drafts from customers", func(t *testing.T) {
		articleRepo := &mockArticleRepository{
			GetByIDFunc: func(ctx context.Context, articleID uint) (*knowledge.Article, error) {
				return storedArticle(t, 5, "Draft", "wip", false), nil
			},
		}

		uc := NewGetArticleUseCase(articleRepo, &mockMarkdownService{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), GetArticleQuery{
			ArticleID:     5,
			RequesterRole: "customer",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))

		result, err := uc.Execute(context.Background(), GetArticleQuery{
			ArticleID:     5,
			RequesterRole: "agent",
		})
		require.NoError(t, err)
		assert.Equal(t, "Draft", result.Title)
	})
}

func TestListArticlesUseCase_Execute(t *testing.T) {
	t.Run("customers see public only", func(t *testing.T) {
		var gotPublicOnly bool
		articleRepo := &mockArticleRepository{
			ListFunc: func(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error) {
				gotPublicOnly = publicOnly
				return []*knowledge.Article{storedArticle(t, 1, "T", "C", true)}, 1, nil
			},
		}

		uc := NewListArticlesUseCase(articleRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListArticlesQuery{RequesterRole: "customer"})
		require.NoError(t, err)
		assert.True(t, gotPublicOnly)
		assert.Equal(t, int64(1), result.Total)

		_, err = uc.Execute(context.Background(), ListArticlesQuery{RequesterRole: "agent"})
		require.NoError(t, err)
		assert.False(t, gotPublicOnly)
	})
}
