package usecases

import (
	"context"

	"parley/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ChangePriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error)
}

type ReplaceTagsExecutor interface {
	Execute(ctx context.Context, cmd ReplaceTagsCommand) (*ReplaceTagsResult, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error)
}

type DeleteMessageExecutor interface {
	Execute(ctx context.Context, cmd DeleteMessageCommand) (*DeleteMessageResult, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) ([]*dto.NoteDTO, error)
}

type UpdateNoteExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoteCommand) (*UpdateNoteResult, error)
}

type DeleteNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoteCommand) (*DeleteNoteResult, error)
}
