package knowledge

import "context"

// SearchResult pairs an article with its cosine similarity to a query.
type SearchResult struct {
	Article    *Article
	Similarity float64
}

type ArticleRepository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, articleID uint) error
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	List(ctx context.Context, publicOnly bool, page, pageSize int) ([]*Article, int64, error)
	// SearchByEmbedding runs a cosine similarity search over article
	// embeddings, returning up to limit results at or above threshold,
	// ordered by descending similarity.
	SearchByEmbedding(ctx context.Context, embedding []float32, limit int, threshold float64) ([]SearchResult, error)
}
