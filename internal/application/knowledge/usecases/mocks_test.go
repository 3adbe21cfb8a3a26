package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc              func(ctx context.Context, a *knowledge.Article) error
	UpdateFunc            func(ctx context.Context, a *knowledge.Article) error
	DeleteFunc            func(ctx context.Context, articleID uint) error
	GetByIDFunc           func(ctx context.Context, articleID uint) (*knowledge.Article, error)
	ListFunc              func(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error)
	SearchByEmbeddingFunc func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, a *knowledge.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *knowledge.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, articleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, articleID)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, publicOnly, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) SearchByEmbedding(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
	if m.SearchByEmbeddingFunc != nil {
		return m.SearchByEmbeddingFunc(ctx, embedding, limit, threshold)
	}
	return nil, nil
}

type mockEmbedder struct {
	EmbedFunc     func(ctx context.Context, text string) ([]float32, error)
	ModelNameFunc func() string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return make([]float32, knowledge.EmbeddingDimensions), nil
}

func (m *mockEmbedder) ModelName() string {
	if m.ModelNameFunc != nil {
		return m.ModelNameFunc()
	}
	return "text-embedding-ada-002"
}

type mockMarkdownService struct {
	ToHTMLFunc          func(markdown string) (string, error)
	SanitizeFunc        func(htmlContent string) string
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
