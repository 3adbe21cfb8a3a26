package ticket

import (
	"context"

	vo "parley/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	GetCustomerTickets(ctx context.Context, customerID uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetAssignedTickets(ctx context.Context, assigneeID uint, filters TicketFilter) ([]*Ticket, int64, error)
	ReplaceTags(ctx context.Context, ticketID uint, tagIDs []uint) error
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CustomerID *uint
	AssigneeID *uint
	Tags       []string
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, messageID uint) (*Message, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	Delete(ctx context.Context, messageID uint) error
}

type NoteRepository interface {
	Save(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, noteID uint) (*Note, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Note, error)
	Delete(ctx context.Context, noteID uint) error
}
