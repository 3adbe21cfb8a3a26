package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/domain/tag"
	apperrors "parley/internal/shared/errors"
)

func storedTag(t *testing.T, id uint, name, color string) *tag.Tag {
	t.Helper()
	created := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	tg, err := tag.ReconstructTag(id, name, color, 0, nil, created, created)
	require.NoError(t, err)
	return tg
}

func TestCreateTagUseCase_Execute(t *testing.T) {
	t.Run("creates new tag", func(t *testing.T) {
		var lookedUp string
		tagRepo := &mockTagRepository{
			GetByNormalizedNameFunc: func(ctx context.Context, normalized string) (*tag.Tag, error) {
				lookedUp = normalized
				return nil, fmt.Errorf("record not found")
			},
			SaveFunc: func(ctx context.Context, tg *tag.Tag) error {
				return tg.SetID(3)
			},
		}

		uc := NewCreateTagUseCase(tagRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateTagCommand{Name: "Billing", Color: "#FF8800"})

		require.NoError(t, err)
		assert.Equal(t, uint(3), result.TagID)
		assert.Equal(t, "Billing", result.Name)
		assert.Equal(t, "billing", lookedUp)
	})

	t.Run("rejects case-insensitive duplicate", func(t *testing.T) {
		saveCalled := false
		tagRepo := &mockTagRepository{
			GetByNormalizedNameFunc: func(ctx context.Context, normalized string) (*tag.Tag, error) {
				return storedTag(t, 1, "billing", "#808080"), nil
			},
			SaveFunc: func(ctx context.Context, tg *tag.Tag) error {
				saveCalled = true
				return nil
			},
		}

		uc := NewCreateTagUseCase(tagRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateTagCommand{Name: "BILLING", Color: "#ff8800"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.False(t, saveCalled)
	})

	t.Run("rejects invalid name and color", func(t *testing.T) {
		uc := NewCreateTagUseCase(&mockTagRepository{}, &mockLogger{})

		tests := []struct {
			name  string
			color string
		}{
			{"x", "#ff8800"},
			{"ok name", "orange"},
			{"bad!chars", "#ff8800"},
		}
		for _, tt := range tests {
			_, err := uc.Execute(context.Background(), CreateTagCommand{Name: tt.name, Color: tt.color})
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		}
	})
}

func TestUpdateTagUseCase_Execute(t *testing.T) {
	t.Run("renames and recolors", func(t *testing.T) {
		var updated *tag.Tag
		tagRepo := &mockTagRepository{
			GetByIDFunc: func(ctx context.Context, tagID uint) (*tag.Tag, error) {
				return storedTag(t, 3, "billing", "#808080"), nil
			},
			GetByNormalizedNameFunc: func(ctx context.Context, normalized string) (*tag.Tag, error) {
				return nil, fmt.Errorf("record not found")
			},
			UpdateFunc: func(ctx context.Context, tg *tag.Tag) error {
				updated = tg
				return nil
			},
		}

		uc := NewUpdateTagUseCase(tagRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpdateTagCommand{TagID: 3, Name: "invoices", Color: "#00FF00"})

		require.NoError(t, err)
		assert.Equal(t, "invoices", result.Name)
		assert.Equal(t, "#00ff00", result.Color)
		require.NotNil(t, updated)
		assert.Equal(t, "invoices", updated.Name())
	})

	t.Run("case-only rename skips conflict check", func(t *testing.T) {
		lookupCalled := false
		tagRepo := &mockTagRepository{
			GetByIDFunc: func(ctx context.Context, tagID uint) (*tag.Tag, error) {
				return storedTag(t, 3, "billing", "#808080"), nil
			},
			GetByNormalizedNameFunc: func(ctx context.Context, normalized string) (*tag.Tag, error) {
				lookupCalled = true
				return storedTag(t, 3, "billing", "#808080"), nil
			},
		}

		uc := NewUpdateTagUseCase(tagRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpdateTagCommand{TagID: 3, Name: "Billing"})

		require.NoError(t, err)
		assert.False(t, lookupCalled)
	})

	t.Run("rename conflict", func(t *testing.T) {
		tagRepo := &mockTagRepository{
			GetByIDFunc: func(ctx context.Context, tagID uint) (*tag.Tag, error) {
				return storedTag(t, 3, "billing", "#808080"), nil
			},
			GetByNormalizedNameFunc: func(ctx context.Context, normalized string) (*tag.Tag, error) {
				return storedTag(t, 9, "invoices", "#112233"), nil
			},
		}

		uc := NewUpdateTagUseCase(tagRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpdateTagCommand{TagID: 3, Name: "Invoices"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestDeleteTagUseCase_Execute(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		deleted := uint(0)
		tagRepo := &mockTagRepository{
			GetByIDFunc: func(ctx context.Context, tagID uint) (*tag.Tag, error) {
				return storedTag(t, tagID, "billing", "#808080"), nil
			},
			DeleteFunc: func(ctx context.Context, tagID uint) error {
				deleted = tagID
				return nil
			},
		}

		uc := NewDeleteTagUseCase(tagRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), DeleteTagCommand{TagID: 3, RequesterRole: "admin"})

		require.NoError(t, err)
		assert.Equal(t, uint(3), deleted)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		uc := NewDeleteTagUseCase(&mockTagRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), DeleteTagCommand{TagID: 3, RequesterRole: "agent"})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestListTagsUseCase_Execute(t *testing.T) {
	tagRepo := &mockTagRepository{
		ListFunc: func(ctx context.Context) ([]*tag.Tag, error) {
			return []*tag.Tag{
				storedTag(t, 1, "billing", "#808080"),
				storedTag(t, 2, "outage", "#ff0000"),
			}, nil
		},
	}

	uc := NewListTagsUseCase(tagRepo, &mockLogger{})
	tags, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "billing", tags[0].Name)
	assert.Equal(t, "outage", tags[1].Name)
}
