package suggestion

import (
	"fmt"
	"time"

	"parley/internal/shared/biztime"
)

// RejectionReason codes why an agent dismissed a suggestion.
type RejectionReason string

const (
	ReasonNotRelevant RejectionReason = "not_relevant"
	ReasonIncorrect   RejectionReason = "incorrect"
	ReasonOther       RejectionReason = "other"
)

func (r RejectionReason) IsValid() bool {
	switch r {
	case ReasonNotRelevant, ReasonIncorrect, ReasonOther:
		return true
	default:
		return false
	}
}

func (r RejectionReason) String() string {
	return string(r)
}

// Feedback records why a suggestion was rejected, feeding later match tuning.
type Feedback struct {
	id           uint
	suggestionID uint
	ticketID     uint
	reason       RejectionReason
	createdAt    time.Time
}

func NewFeedback(suggestionID, ticketID uint, reason RejectionReason) (*Feedback, error) {
	if suggestionID == 0 {
		return nil, fmt.Errorf("suggestion ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid rejection reason: %s", reason)
	}

	return &Feedback{
		suggestionID: suggestionID,
		ticketID:     ticketID,
		reason:       reason,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructFeedback(
	id uint,
	suggestionID uint,
	ticketID uint,
	reason RejectionReason,
	createdAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid rejection reason: %s", reason)
	}

	return &Feedback{
		id:           id,
		suggestionID: suggestionID,
		ticketID:     ticketID,
		reason:       reason,
		createdAt:    createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) SuggestionID() uint {
	return f.suggestionID
}

func (f *Feedback) TicketID() uint {
	return f.ticketID
}

func (f *Feedback) Reason() RejectionReason {
	return f.reason
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
