package mappers

import (
	"time"

	"github.com/pgvector/pgvector-go"

	"parley/internal/domain/knowledge"
	"parley/internal/infrastructure/persistence/models"
)

type ArticleMapper interface {
	ToModel(a *knowledge.Article) *models.ArticleModel
	ToDomain(model *models.ArticleModel) (*knowledge.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(a *knowledge.Article) *models.ArticleModel {
	model := &models.ArticleModel{
		ID:        a.ID(),
		Title:     a.Title(),
		Content:   a.Content(),
		IsPublic:  a.IsPublic(),
		AuthorID:  a.AuthorID(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}

	if len(a.Embedding()) > 0 {
		vec := pgvector.NewVector(a.Embedding())
		model.Embedding = &vec
	}

	if a.EmbeddedAt() != nil {
		embedded := a.EmbeddedAt().UnixMilli()
		model.EmbeddedAt = &embedded
	}

	return model
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*knowledge.Article, error) {
	var embedding []float32
	if model.Embedding != nil {
		embedding = model.Embedding.Slice()
	}

	var embeddedAt *time.Time
	if model.EmbeddedAt != nil {
		t := millisToTime(*model.EmbeddedAt)
		embeddedAt = &t
	}

	return knowledge.ReconstructArticle(
		model.ID,
		model.Title,
		model.Content,
		model.IsPublic,
		model.AuthorID,
		embedding,
		embeddedAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
