package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "valid new status", input: "new", want: StatusNew},
		{name: "valid open status", input: "open", want: StatusOpen},
		{name: "valid pending status", input: "pending", want: StatusPending},
		{name: "valid in_progress status", input: "in_progress", want: StatusInProgress},
		{name: "valid resolved status", input: "resolved", want: StatusResolved},
		{name: "valid closed status", input: "closed", want: StatusClosed},
		{name: "reopened is not a status", input: "reopened", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "uppercase rejected", input: "OPEN", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTicketStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{name: "new to open", from: StatusNew, to: StatusOpen, want: true},
		{name: "new to in_progress", from: StatusNew, to: StatusInProgress, want: true},
		{name: "new to closed", from: StatusNew, to: StatusClosed, want: true},
		{name: "new to resolved blocked", from: StatusNew, to: StatusResolved, want: false},
		{name: "open to resolved", from: StatusOpen, to: StatusResolved, want: true},
		{name: "pending to open", from: StatusPending, to: StatusOpen, want: true},
		{name: "in_progress to pending", from: StatusInProgress, to: StatusPending, want: true},
		{name: "resolved reopens to open", from: StatusResolved, to: StatusOpen, want: true},
		{name: "closed reopens to open", from: StatusClosed, to: StatusOpen, want: true},
		{name: "closed to resolved blocked", from: StatusClosed, to: StatusResolved, want: false},
		{name: "resolved to pending blocked", from: StatusResolved, to: StatusPending, want: false},
		{name: "unknown status has no transitions", from: TicketStatus("archived"), to: StatusOpen, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTicketStatus_AllowsRating(t *testing.T) {
	assert.True(t, StatusResolved.AllowsRating())
	assert.True(t, StatusClosed.AllowsRating())
	assert.False(t, StatusNew.AllowsRating())
	assert.False(t, StatusOpen.AllowsRating())
	assert.False(t, StatusPending.AllowsRating())
	assert.False(t, StatusInProgress.AllowsRating())
}
