package usecases

import (
	"context"

	"parley/internal/domain/tag"
	"parley/internal/shared/logger"
)

type mockTagRepository struct {
	SaveFunc                func(ctx context.Context, t *tag.Tag) error
	UpdateFunc              func(ctx context.Context, t *tag.Tag) error
	DeleteFunc              func(ctx context.Context, tagID uint) error
	GetByIDFunc             func(ctx context.Context, tagID uint) (*tag.Tag, error)
	GetByNormalizedNameFunc func(ctx context.Context, normalized string) (*tag.Tag, error)
	GetByNamesFunc          func(ctx context.Context, names []string) ([]*tag.Tag, error)
	ListFunc                func(ctx context.Context) ([]*tag.Tag, error)
}

func (m *mockTagRepository) Save(ctx context.Context, t *tag.Tag) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTagRepository) Update(ctx context.Context, t *tag.Tag) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTagRepository) Delete(ctx context.Context, tagID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tagID)
	}
	return nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, tagID uint) (*tag.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tagID)
	}
	return nil, nil
}

func (m *mockTagRepository) GetByNormalizedName(ctx context.Context, normalized string) (*tag.Tag, error) {
	if m.GetByNormalizedNameFunc != nil {
		return m.GetByNormalizedNameFunc(ctx, normalized)
	}
	return nil, nil
}

func (m *mockTagRepository) GetByNames(ctx context.Context, names []string) ([]*tag.Tag, error) {
	if m.GetByNamesFunc != nil {
		return m.GetByNamesFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockTagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
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
