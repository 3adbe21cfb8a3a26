package usecases

import (
	"context"

	"parley/internal/domain/shared/events"
	"parley/internal/domain/tag"
	"parley/internal/domain/ticket"
	"parley/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc             func(ctx context.Context, ticketID uint) error
	GetByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc        func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetCustomerTicketsFunc func(ctx context.Context, customerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetAssignedTicketsFunc func(ctx context.Context, assigneeID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	ReplaceTagsFunc        func(ctx context.Context, ticketID uint, tagIDs []uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetCustomerTickets(ctx context.Context, customerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetCustomerTicketsFunc != nil {
		return m.GetCustomerTicketsFunc(ctx, customerID, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetAssignedTickets(ctx context.Context, assigneeID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.GetAssignedTicketsFunc != nil {
		return m.GetAssignedTicketsFunc(ctx, assigneeID, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ReplaceTags(ctx context.Context, ticketID uint, tagIDs []uint) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, ticketID, tagIDs)
	}
	return nil
}

type mockMessageRepository struct {
	SaveFunc          func(ctx context.Context, message *ticket.Message) error
	GetByIDFunc       func(ctx context.Context, messageID uint) (*ticket.Message, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	DeleteFunc        func(ctx context.Context, messageID uint) error
}

func (m *mockMessageRepository) Save(ctx context.Context, message *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) GetByID(ctx context.Context, messageID uint) (*ticket.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, messageID)
	}
	return nil, nil
}

func (m *mockMessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) Delete(ctx context.Context, messageID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, messageID)
	}
	return nil
}

type mockNoteRepository struct {
	SaveFunc          func(ctx context.Context, note *ticket.Note) error
	UpdateFunc        func(ctx context.Context, note *ticket.Note) error
	GetByIDFunc       func(ctx context.Context, noteID uint) (*ticket.Note, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Note, error)
	DeleteFunc        func(ctx context.Context, noteID uint) error
}

func (m *mockNoteRepository) Save(ctx context.Context, note *ticket.Note) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) Update(ctx context.Context, note *ticket.Note) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID uint) (*ticket.Note, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, noteID)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, noteID)
	}
	return nil
}

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

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "T-20260831-0001", nil
}

type mockTransactionRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
	published   []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error { return nil }

func (m *mockEventDispatcher) Stop() error { return nil }

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
