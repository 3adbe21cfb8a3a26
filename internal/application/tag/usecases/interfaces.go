package usecases

import (
	"context"

	"parley/internal/application/tag/dto"
)

type CreateTagExecutor interface {
	Execute(ctx context.Context, cmd CreateTagCommand) (*CreateTagResult, error)
}

type UpdateTagExecutor interface {
	Execute(ctx context.Context, cmd UpdateTagCommand) (*UpdateTagResult, error)
}

type DeleteTagExecutor interface {
	Execute(ctx context.Context, cmd DeleteTagCommand) (*DeleteTagResult, error)
}

type ListTagsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TagDTO, error)
}
