package tag

import "context"

type TagRepository interface {
	Save(ctx context.Context, tag *Tag) error
	Update(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, tagID uint) error
	GetByID(ctx context.Context, tagID uint) (*Tag, error)
	GetByNormalizedName(ctx context.Context, normalized string) (*Tag, error)
	GetByNames(ctx context.Context, names []string) ([]*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
}
