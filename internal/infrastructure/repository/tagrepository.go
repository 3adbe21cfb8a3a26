package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"parley/internal/domain/tag"
	"parley/internal/infrastructure/persistence/mappers"
	"parley/internal/infrastructure/persistence/models"
	db "parley/internal/shared/db"
)

type TagRepository struct {
	db     *gorm.DB
	mapper mappers.TagMapper
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{
		db:     db,
		mapper: mappers.NewTagMapper(),
	}
}

func (r *TagRepository) Save(ctx context.Context, t *tag.Tag) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TagRepository) Update(ctx context.Context, t *tag.Tag) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TagModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"normalized_name": model.NormalizedName,
			"color":           model.Color,
			"usage_count":     model.UsageCount,
			"last_used_at":    model.LastUsedAt,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update tag: %w", result.Error)
	}

	return nil
}

func (r *TagRepository) Delete(ctx context.Context, tagID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TagModel{}, tagID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("tag not found")
	}

	if err := tx.Where("tag_id = ?", tagID).Delete(&models.TicketTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag links: %w", err)
	}

	return nil
}

func (r *TagRepository) GetByID(ctx context.Context, tagID uint) (*tag.Tag, error) {
	var model models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, tagID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("tag not found")
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TagRepository) GetByNormalizedName(ctx context.Context, normalized string) (*tag.Tag, error) {
	var model models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("normalized_name = ?", normalized).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("tag not found")
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TagRepository) GetByNames(ctx context.Context, names []string) ([]*tag.Tag, error) {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = tag.NormalizeName(name)
	}

	var tagModels []models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("normalized_name IN ?", normalized).
		Find(&tagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	return r.toDomainSlice(tagModels)
}

func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	var tagModels []models.TagModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("normalized_name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.toDomainSlice(tagModels)
}

func (r *TagRepository) toDomainSlice(tagModels []models.TagModel) ([]*tag.Tag, error) {
	tags := make([]*tag.Tag, len(tagModels))
	for i, model := range tagModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tags[i] = t
	}
	return tags, nil
}
