package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/domain/knowledge"
	"parley/internal/domain/suggestion"
	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	apperrors "parley/internal/shared/errors"
)

func pendingSuggestion(t *testing.T) *suggestion.Suggestion {
	t.Helper()
	now := time.Now().UTC()
	s, err := suggestion.ReconstructSuggestion(
		7, 1, "Try resetting from the login page.", 0.84,
		suggestion.StatusPending, "gpt-4", []uint{5}, now, now,
	)
	require.NoError(t, err)
	return s
}

func terminalSuggestion(t *testing.T, status suggestion.SuggestionStatus) *suggestion.Suggestion {
	t.Helper()
	now := time.Now().UTC()
	s, err := suggestion.ReconstructSuggestion(
		7, 1, "resp", 0.84, status, "gpt-4", []uint{5}, now, now,
	)
	require.NoError(t, err)
	return s
}

func TestAcceptSuggestionUseCase_Execute_Success(t *testing.T) {
	sg := pendingSuggestion(t)

	var savedMessage *ticket.Message
	var updatedSuggestion *suggestion.Suggestion

	mockSuggestions := &mockSuggestionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*suggestion.Suggestion, error) {
			return sg, nil
		},
		UpdateFunc: func(ctx context.Context, s *suggestion.Suggestion) error {
			updatedSuggestion = s
			return nil
		},
	}
	mockMessages := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *ticket.Message) error {
			if err := m.SetID(42); err != nil {
				return err
			}
			savedMessage = m
			return nil
		},
	}
	mockArticles := &mockArticleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return kbArticle(t, 5, "Password resets"), nil
		},
	}

	useCase := NewAcceptSuggestionUseCase(mockSuggestions, mockMessages, mockArticles, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AcceptSuggestionCommand{
		SuggestionID: 7,
		AcceptedBy:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.MessageID)
	assert.Equal(t, uint(1), result.TicketID)

	require.NotNil(t, updatedSuggestion)
	assert.Equal(t, suggestion.StatusAccepted, updatedSuggestion.Status())

	require.NotNil(t, savedMessage)
	content := savedMessage.Content()
	assert.Equal(t, vo.ContentKBReferral, content.Kind)
	assert.Equal(t, uint(5), content.ArticleID)
	assert.Equal(t, "Password resets", content.ArticleTitle)
	assert.True(t, savedMessage.AIGenerated())
	assert.Equal(t, uint(2), savedMessage.AuthorID())
}

func TestAcceptSuggestionUseCase_Execute_AlreadyTerminal(t *testing.T) {
	for _, status := range []suggestion.SuggestionStatus{suggestion.StatusAccepted, suggestion.StatusRejected} {
		t.Run(status.String(), func(t *testing.T) {
			messageSaved := false
			mockSuggestions := &mockSuggestionRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*suggestion.Suggestion, error) {
					return terminalSuggestion(t, status), nil
				},
			}
			mockMessages := &mockMessageRepository{
				SaveFunc: func(ctx context.Context, m *ticket.Message) error {
					messageSaved = true
					return nil
				},
			}

			useCase := NewAcceptSuggestionUseCase(mockSuggestions, mockMessages, &mockArticleRepository{}, &mockLogger{})

			_, err := useCase.Execute(context.Background(), AcceptSuggestionCommand{
				SuggestionID: 7,
				AcceptedBy:   2,
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsConflictError(err))
			assert.False(t, messageSaved)
		})
	}
}

func TestRejectSuggestionUseCase_Execute_Success(t *testing.T) {
	sg := pendingSuggestion(t)

	var savedFeedback *suggestion.Feedback
	mockSuggestions := &mockSuggestionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*suggestion.Suggestion, error) {
			return sg, nil
		},
	}
	mockFeedback := &mockFeedbackRepository{
		SaveFunc: func(ctx context.Context, f *suggestion.Feedback) error {
			savedFeedback = f
			return f.SetID(3)
		},
	}

	useCase := NewRejectSuggestionUseCase(mockSuggestions, mockFeedback, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RejectSuggestionCommand{
		SuggestionID: 7,
		Reason:       "not_relevant",
		RejectedBy:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "not_relevant", result.Reason)
	assert.Equal(t, suggestion.StatusRejected, sg.Status())

	require.NotNil(t, savedFeedback)
	assert.Equal(t, uint(7), savedFeedback.SuggestionID())
	assert.Equal(t, uint(1), savedFeedback.TicketID())
	assert.Equal(t, suggestion.ReasonNotRelevant, savedFeedback.Reason())
}

func TestRejectSuggestionUseCase_Execute_InvalidReason(t *testing.T) {
	useCase := NewRejectSuggestionUseCase(&mockSuggestionRepository{}, &mockFeedbackRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), RejectSuggestionCommand{
		SuggestionID: 7,
		Reason:       "meh",
		RejectedBy:   2,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRejectSuggestionUseCase_Execute_AlreadyTerminal(t *testing.T) {
	feedbackSaved := false
	mockSuggestions := &mockSuggestionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*suggestion.Suggestion, error) {
			return terminalSuggestion(t, suggestion.StatusAccepted), nil
		},
	}
	mockFeedback := &mockFeedbackRepository{
		SaveFunc: func(ctx context.Context, f *suggestion.Feedback) error {
			feedbackSaved = true
			return nil
		},
	}

	useCase := NewRejectSuggestionUseCase(mockSuggestions, mockFeedback, &mockLogger{})

	_, err := useCase.Execute(context.Background(), RejectSuggestionCommand{
		SuggestionID: 7,
		Reason:       "other",
		RejectedBy:   2,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.False(t, feedbackSaved)
}
