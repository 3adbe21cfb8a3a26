package dto

import (
	"time"

	"parley/internal/domain/tag"
)

type TagDTO struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromTag(t *tag.Tag) *TagDTO {
	return &TagDTO{
		ID:         t.ID(),
		Name:       t.Name(),
		Color:      t.Color(),
		UsageCount: t.UsageCount(),
		LastUsedAt: t.LastUsedAt(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func FromTags(tags []*tag.Tag) []*TagDTO {
	dtos := make([]*TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, FromTag(t))
	}
	return dtos
}
