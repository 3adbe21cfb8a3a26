package suggestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingSuggestion(t *testing.T) *Suggestion {
	t.Helper()
	s, err := NewSuggestion(1, "Try resetting your password from the login page.", 0.82, "gpt-4", []uint{5, 9})
	require.NoError(t, err)
	return s
}

func TestNewSuggestion(t *testing.T) {
	t.Run("valid suggestion starts pending", func(t *testing.T) {
		s := newPendingSuggestion(t)

		assert.Equal(t, uint(1), s.TicketID())
		assert.Equal(t, StatusPending, s.Status())
		assert.True(t, s.IsPending())
		assert.Equal(t, 0.82, s.Confidence())
		assert.Equal(t, "gpt-4", s.Model())
		assert.Equal(t, []uint{5, 9}, s.SourceArticleIDs())
		assert.Equal(t, uint(5), s.PrimaryArticleID())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		tests := []struct {
			name       string
			ticketID   uint
			response   string
			confidence float64
			model      string
			sources    []uint
		}{
			{name: "zero ticket ID", ticketID: 0, response: "r", confidence: 0.5, model: "gpt-4", sources: []uint{1}},
			{name: "empty response", ticketID: 1, response: "", confidence: 0.5, model: "gpt-4", sources: []uint{1}},
			{name: "confidence below range", ticketID: 1, response: "r", confidence: -0.1, model: "gpt-4", sources: []uint{1}},
			{name: "confidence above range", ticketID: 1, response: "r", confidence: 1.1, model: "gpt-4", sources: []uint{1}},
			{name: "missing model", ticketID: 1, response: "r", confidence: 0.5, model: "", sources: []uint{1}},
			{name: "no source articles", ticketID: 1, response: "r", confidence: 0.5, model: "gpt-4", sources: nil},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s, err := NewSuggestion(tc.ticketID, tc.response, tc.confidence, tc.model, tc.sources)
				require.Error(t, err)
				assert.Nil(t, s)
			})
		}
	})

	t.Run("confidence boundaries accepted", func(t *testing.T) {
		_, err := NewSuggestion(1, "r", 0, "gpt-4", []uint{1})
		require.NoError(t, err)
		_, err = NewSuggestion(1, "r", 1, "gpt-4", []uint{1})
		require.NoError(t, err)
	})
}

func TestSuggestion_AcceptReject(t *testing.T) {
	t.Run("pending can be accepted", func(t *testing.T) {
		s := newPendingSuggestion(t)
		require.NoError(t, s.Accept())
		assert.Equal(t, StatusAccepted, s.Status())
		assert.False(t, s.IsPending())
	})

	t.Run("pending can be rejected", func(t *testing.T) {
		s := newPendingSuggestion(t)
		require.NoError(t, s.Reject())
		assert.Equal(t, StatusRejected, s.Status())
	})

	t.Run("terminal states never transition", func(t *testing.T) {
		s := newPendingSuggestion(t)
		require.NoError(t, s.Accept())

		require.Error(t, s.Accept())
		require.Error(t, s.Reject())
		assert.Equal(t, StatusAccepted, s.Status())

		r := newPendingSuggestion(t)
		require.NoError(t, r.Reject())
		require.Error(t, r.Accept())
		assert.Equal(t, StatusRejected, r.Status())
	})
}

func TestSuggestionStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusAccepted.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, SuggestionStatus("draft").IsValid())

	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestNewFeedback(t *testing.T) {
	t.Run("valid feedback", func(t *testing.T) {
		f, err := NewFeedback(3, 1, ReasonNotRelevant)
		require.NoError(t, err)
		assert.Equal(t, uint(3), f.SuggestionID())
		assert.Equal(t, uint(1), f.TicketID())
		assert.Equal(t, ReasonNotRelevant, f.Reason())
		assert.False(t, f.CreatedAt().IsZero())
	})

	t.Run("invalid reason rejected", func(t *testing.T) {
		_, err := NewFeedback(3, 1, RejectionReason("meh"))
		require.Error(t, err)
	})

	t.Run("zero ids rejected", func(t *testing.T) {
		_, err := NewFeedback(0, 1, ReasonOther)
		require.Error(t, err)
		_, err = NewFeedback(3, 0, ReasonOther)
		require.Error(t, err)
	})
}

func TestReconstructSuggestion(t *testing.T) {
	now := time.Now().UTC()
	s, err := ReconstructSuggestion(7, 1, "resp", 0.9, StatusAccepted, "gpt-4", []uint{2}, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), s.ID())
	assert.Equal(t, StatusAccepted, s.Status())

	_, err = ReconstructSuggestion(0, 1, "resp", 0.9, StatusPending, "gpt-4", nil, now, now)
	require.Error(t, err)

	_, err = ReconstructSuggestion(7, 1, "resp", 0.9, SuggestionStatus("draft"), "gpt-4", nil, now, now)
	require.Error(t, err)
}
