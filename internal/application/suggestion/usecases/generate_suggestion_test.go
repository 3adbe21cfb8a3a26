package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/domain/knowledge"
	"parley/internal/domain/suggestion"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
)

func openTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, "T-20260831-0001",
		"Cannot reset password", "The reset email never arrives",
		vo.PriorityMedium, vo.StatusNew,
		10, nil, nil, nil, nil, now, now,
	)
	require.NoError(t, err)
	return tk
}

func kbArticle(t *testing.T, id uint, title string) *knowledge.Article {
	t.Helper()
	now := time.Now().UTC()
	emb := make([]float32, knowledge.EmbeddingDimensions)
	a, err := knowledge.ReconstructArticle(id, title, "Step one: check spam.", true, 3, emb, &now, now, now)
	require.NoError(t, err)
	return a
}

func TestGenerateSuggestionUseCase_Execute_MatchAboveThreshold(t *testing.T) {
	var saved *suggestion.Suggestion
	mockSuggestions := &mockSuggestionRepository{
		SaveFunc: func(ctx context.Context, s *suggestion.Suggestion) error {
			if err := s.SetID(7); err != nil {
				return err
			}
			saved = s
			return nil
		},
	}
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t), nil
		},
	}
	mockArticles := &mockArticleRepository{
		SearchByEmbeddingFunc: func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
			return []knowledge.SearchResult{
				{Article: kbArticle(t, 5, "Password resets"), Similarity: 0.7},
				{Article: kbArticle(t, 9, "Email deliverability"), Similarity: 0.55},
			}, nil
		},
	}

	useCase := NewGenerateSuggestionUseCase(
		mockTickets, mockArticles, mockSuggestions,
		&mockEmbedder{}, &mockDrafter{},
		0.5, 3, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), GenerateSuggestionCommand{TicketID: 1})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Skipped)
	assert.Equal(t, uint(7), result.SuggestionID)
	assert.InDelta(t, 0.84, result.Confidence, 1e-9)

	require.NotNil(t, saved)
	assert.Equal(t, suggestion.StatusPending, saved.Status())
	assert.Equal(t, []uint{5, 9}, saved.SourceArticleIDs())
	assert.Equal(t, "Here is a drafted reply.", saved.Response())
	assert.Equal(t, "text-embedding-ada-002", saved.Model())
}

func TestGenerateSuggestionUseCase_Execute_NoMatchBelowThreshold(t *testing.T) {
	saveCalled := false
	mockSuggestions := &mockSuggestionRepository{
		SaveFunc: func(ctx context.Context, s *suggestion.Suggestion) error {
			saveCalled = true
			return nil
		},
	}
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t), nil
		},
	}
	mockArticles := &mockArticleRepository{
		SearchByEmbeddingFunc: func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
			assert.Equal(t, 0.5, threshold)
			return nil, nil
		},
	}

	useCase := NewGenerateSuggestionUseCase(
		mockTickets, mockArticles, mockSuggestions,
		&mockEmbedder{}, &mockDrafter{},
		0.5, 3, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), GenerateSuggestionCommand{TicketID: 1})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, saveCalled, "no suggestion row below threshold")
}

func TestGenerateSuggestionUseCase_Execute_SkipIfExists(t *testing.T) {
	embedCalled := false
	mockSuggestions := &mockSuggestionRepository{
		ExistsForTicketFunc: func(ctx context.Context, ticketID uint) (bool, error) {
			return true, nil
		},
	}
	embedder := &mockEmbedder{
		EmbedFunc: func(ctx context.Context, text string) ([]float32, error) {
			embedCalled = true
			return make([]float32, knowledge.EmbeddingDimensions), nil
		},
	}

	useCase := NewGenerateSuggestionUseCase(
		&mockTicketRepository{}, &mockArticleRepository{}, mockSuggestions,
		embedder, &mockDrafter{},
		0.5, 3, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), GenerateSuggestionCommand{
		TicketID:     1,
		SkipIfExists: true,
	})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, embedCalled, "redelivered event must not re-run the pipeline")
}

func TestGenerateSuggestionUseCase_Execute_DrafterFailureFallsBack(t *testing.T) {
	var saved *suggestion.Suggestion
	mockSuggestions := &mockSuggestionRepository{
		SaveFunc: func(ctx context.Context, s *suggestion.Suggestion) error {
			saved = s
			return s.SetID(8)
		},
	}
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t), nil
		},
	}
	mockArticles := &mockArticleRepository{
		SearchByEmbeddingFunc: func(ctx context.Context, embedding []float32, limit int, threshold float64) ([]knowledge.SearchResult, error) {
			return []knowledge.SearchResult{
				{Article: kbArticle(t, 5, "Password resets"), Similarity: 0.9},
			}, nil
		},
	}
	drafter := &mockDrafter{
		DraftResponseFunc: func(ctx context.Context, tt, td, at, ac string) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	useCase := NewGenerateSuggestionUseCase(
		mockTickets, mockArticles, mockSuggestions,
		&mockEmbedder{}, drafter,
		0.5, 3, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), GenerateSuggestionCommand{TicketID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Confidence, "0.9 similarity boosts past the clamp")

	require.NotNil(t, saved)
	assert.Contains(t, saved.Response(), "Password resets", "fallback quotes the article")
}

func TestGenerateSuggestionUseCase_Execute_EmbedFailureSurfaces(t *testing.T) {
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t), nil
		},
	}
	embedder := &mockEmbedder{
		EmbedFunc: func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("api unavailable")
		},
	}

	useCase := NewGenerateSuggestionUseCase(
		mockTickets, &mockArticleRepository{}, &mockSuggestionRepository{},
		embedder, &mockDrafter{},
		0.5, 3, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), GenerateSuggestionCommand{TicketID: 1})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestConfidenceFromSimilarity(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		want       float64
	}{
		{name: "mid similarity boosted", similarity: 0.5, want: 0.6},
		{name: "threshold similarity", similarity: 0.7, want: 0.84},
		{name: "clamp boundary", similarity: 0.8333333333333334, want: 1.0},
		{name: "above clamp boundary", similarity: 0.9, want: 1.0},
		{name: "perfect match", similarity: 1.0, want: 1.0},
		{name: "zero", similarity: 0, want: 0},
		{name: "negative clamped to zero", similarity: -0.2, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ConfidenceFromSimilarity(tc.similarity), 1e-9)
		})
	}
}
