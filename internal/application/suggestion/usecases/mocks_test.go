package usecases

import (
	"context"

	"parley/internal/domain/knowledge"
	"parley/internal/domain/suggestion"
	"parley/internal/domain/ticket"
	"parley/internal/shared/logger"
)

type mockSuggestionRepository struct {
	SaveFunc                func(ctx context.Context, s *suggestion.Suggestion) error
	UpdateFunc              func(ctx context.Context, s *suggestion.Suggestion) error
	GetByIDFunc             func(ctx context.Context, suggestionID uint) (*suggestion.Suggestion, error)
	GetActiveByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*suggestion.Suggestion, error)
	ExistsForTicketFunc     func(ctx context.Context, ticketID uint) (bool, error)
}

func (m *mockSuggestionRepository) Save(ctx context.Context, s *suggestion.Suggestion) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSuggestionRepository) Update(ctx context.Context, s *suggestion.Suggestion) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSuggestionRepository) GetByID(ctx context.Context, suggestionID uint) (*suggestion.Suggestion, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, suggestionID)
	}
	return nil, nil
}

func (m *mockSuggestionRepository) GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*suggestion.Suggestion, error) {
	if m.GetActiveByTicketIDFunc != nil {
		return m.GetActiveByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockSuggestionRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	if m.ExistsForTicketFunc != nil {
		return m.ExistsForTicketFunc(ctx, ticketID)
	}
	return false, nil
}

type mockFeedbackRepository struct {
	SaveFunc              func(ctx context.Context, f *suggestion.Feedback) error
	GetBySuggestionIDFunc func(ctx context.Context, suggestionID uint) ([]*suggestion.Feedback, error)
}

func (m *mockFeedbackRepository) Save(ctx context.Context, f *suggestion.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) GetBySuggestionID(ctx context.Context, suggestionID uint) ([]*suggestion.Feedback, error) {
	if m.GetBySuggestionIDFunc != nil {
		return m.GetBySuggestionIDFunc(ctx, suggestionID)
	}
	return nil, nil
}

type mockArticleRepository struct {
	SaveFunc              func(ctx context.Context, a *knowledge.Article) error
	UpdateFunc            func(ctx context.Context, a *knowledge.Article) error
	DeleteFunc            func(ctx context.Context, articleID uint) error
	GetByIDFunc           func(ctx context.Context, articleID uint) (*knowledge.Article, error)
	ListFunc              func(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error)
	SearchByEmbeddingFunc func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, a *knowledge.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *knowledge.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, articleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, articleID)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, publicOnly bool, page, pageSize int) ([]*knowledge.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, publicOnly, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) SearchByEmbedding(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
	if m.SearchByEmbeddingFunc != nil {
		return m.SearchByEmbeddingFunc(ctx, embedding, limit, threshold)
	}
	return nil, nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) GetCustomerTickets(ctx context.Context, customerID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) GetAssignedTickets(ctx context.Context, assigneeID uint, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) ReplaceTags(ctx context.Context, ticketID uint, tagIDs []uint) error {
	return nil
}

type mockMessageRepository struct {
	SaveFunc func(ctx context.Context, message *ticket.Message) error
}

func (m *mockMessageRepository) Save(ctx context.Context, message *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) GetByID(ctx context.Context, messageID uint) (*ticket.Message, error) {
	return nil, nil
}

func (m *mockMessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	return nil, nil
}

func (m *mockMessageRepository) Delete(ctx context.Context, messageID uint) error { return nil }

type mockEmbedder struct {
	EmbedFunc     func(ctx context.Context, text string) ([]float32, error)
	ModelNameFunc func() string
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return make([]float32, knowledge.EmbeddingDimensions), nil
}

func (m *mockEmbedder) ModelName() string {
	if m.ModelNameFunc != nil {
		return m.ModelNameFunc()
	}
	return "text-embedding-ada-002"
}

type mockDrafter struct {
	DraftResponseFunc func(ctx context.Context, ticketTitle, ticketDescription, articleTitle, articleContent string) (string, error)
}

func (m *mockDrafter) DraftResponse(ctx context.Context, ticketTitle, ticketDescription, articleTitle, articleContent string) (string, error) {
	if m.DraftResponseFunc != nil {
		return m.DraftResponseFunc(ctx, ticketTitle, ticketDescription, articleTitle, articleContent)
	}
	return "Here is a drafted reply.", nil
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
