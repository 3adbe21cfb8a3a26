package mappers

import (
	"time"

	"parley/internal/domain/tag"
	"parley/internal/infrastructure/persistence/models"
)

type TagMapper interface {
	ToModel(t *tag.Tag) *models.TagModel
	ToDomain(model *models.TagModel) (*tag.Tag, error)
}

type TagMapperImpl struct{}

func NewTagMapper() TagMapper {
	return &TagMapperImpl{}
}

func (m *TagMapperImpl) ToModel(t *tag.Tag) *models.TagModel {
	model := &models.TagModel{
		ID:             t.ID(),
		Name:           t.Name(),
		NormalizedName: t.NormalizedName(),
		Color:          t.Color(),
		UsageCount:     t.UsageCount(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	if t.LastUsedAt() != nil {
		last := t.LastUsedAt().UnixMilli()
		model.LastUsedAt = &last
	}

	return model
}

func (m *TagMapperImpl) ToDomain(model *models.TagModel) (*tag.Tag, error) {
	var lastUsedAt *time.Time
	if model.LastUsedAt != nil {
		t := millisToTime(*model.LastUsedAt)
		lastUsedAt = &t
	}

	return tag.ReconstructTag(
		model.ID,
		model.Name,
		model.Color,
		model.UsageCount,
		lastUsedAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
