package repository

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"parley/internal/domain/knowledge"
	"parley/internal/infrastructure/persistence/mappers"
	"parley/internal/infrastructure/persistence/models"
	db "parley/internal/shared/db"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Save(ctx context.Context, a *knowledge.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ArticleRepository) Update(ctx context.Context, a *knowledge.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Use a column map so is_public=false and a cleared embedding are
	// written rather than skipped as zero values.
	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"content":     model.Content,
			"is_public":   model.IsPublic,
			"embedding":   model.Embedding,
			"embedded_at": model.EmbeddedAt,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ArticleModel{}, articleID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("article not found")
	}

	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ArticleRepository) List(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query = query.Order("updated_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var articleModels []models.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*knowledge.Article, len(articleModels))
	for i, model := range articleModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		articles[i] = a
	}

	return articles, total, nil
}

// SearchByEmbedding runs a cosine similarity search with pgvector. The <=>
// operator is cosine distance, so similarity is 1 - distance. Articles
// without an embedding never match.
func (r *ArticleRepository) SearchByEmbedding(
	ctx context.Context,
	embedding []float32,
	limit int,
	threshold float64,
) ([]knowledge.SearchResult, error) {
	if len(embedding) != knowledge.EmbeddingDimensions {
		return nil, fmt.Errorf("embedding must have %d dimensions, got %d", knowledge.EmbeddingDimensions, len(embedding))
	}

	vec := pgvector.NewVector(embedding)
	tx := db.GetTxFromContext(ctx, r.db)

	type scoredRow struct {
		models.ArticleModel
		Similarity float64
	}

	var rows []scoredRow
	if err := tx.
		Model(&models.ArticleModel{}).
		Select("kb_articles.*, 1 - (embedding <=> ?) AS similarity", vec).
		Where("embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", vec, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	results := make([]knowledge.SearchResult, len(rows))
	for i, row := range rows {
		a, err := r.mapper.ToDomain(&row.ArticleModel)
		if err != nil {
			return nil, err
		}
		results[i] = knowledge.SearchResult{Article: a, Similarity: row.Similarity}
	}

	return results, nil
}
