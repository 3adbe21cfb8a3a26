package suggestion

import (
	"fmt"
	"time"

	"parley/internal/shared/biztime"
)

type SuggestionStatus string

const (
	StatusPending  SuggestionStatus = "pending"
	StatusAccepted SuggestionStatus = "accepted"
	StatusRejected SuggestionStatus = "rejected"
)

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s SuggestionStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s SuggestionStatus) String() string {
	return string(s)
}

// Suggestion is an AI-drafted response candidate for a ticket. It starts
// pending and terminates as accepted or rejected; terminal suggestions never
// transition again.
type Suggestion struct {
	id               uint
	ticketID         uint
	response         string
	confidence       float64
	status           SuggestionStatus
	model            string
	sourceArticleIDs []uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSuggestion(
	ticketID uint,
	response string,
	confidence float64,
	model string,
	sourceArticleIDs []uint,
) (*Suggestion, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(response) == 0 {
		return nil, fmt.Errorf("suggested response cannot be empty")
	}
	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("confidence must be within [0, 1]")
	}
	if len(model) == 0 {
		return nil, fmt.Errorf("model name is required")
	}
	if len(sourceArticleIDs) == 0 {
		return nil, fmt.Errorf("at least one source article is required")
	}

	ids := make([]uint, len(sourceArticleIDs))
	copy(ids, sourceArticleIDs)

	now := biztime.NowUTC()
	return &Suggestion{
		ticketID:         ticketID,
		response:         response,
		confidence:       confidence,
		status:           StatusPending,
		model:            model,
		sourceArticleIDs: ids,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructSuggestion(
	id uint,
	ticketID uint,
	response string,
	confidence float64,
	status SuggestionStatus,
	model string,
	sourceArticleIDs []uint,
	createdAt, updatedAt time.Time,
) (*Suggestion, error) {
	if id == 0 {
		return nil, fmt.Errorf("suggestion ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid suggestion status: %s", status)
	}

	if sourceArticleIDs == nil {
		sourceArticleIDs = []uint{}
	}

	return &Suggestion{
		id:               id,
		ticketID:         ticketID,
		response:         response,
		confidence:       confidence,
		status:           status,
		model:            model,
		sourceArticleIDs: sourceArticleIDs,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (s *Suggestion) ID() uint {
	return s.id
}

func (s *Suggestion) TicketID() uint {
	return s.ticketID
}

func (s *Suggestion) Response() string {
	return s.response
}

func (s *Suggestion) Confidence() float64 {
	return s.confidence
}

func (s *Suggestion) Status() SuggestionStatus {
	return s.status
}

func (s *Suggestion) Model() string {
	return s.model
}

func (s *Suggestion) SourceArticleIDs() []uint {
	ids := make([]uint, len(s.sourceArticleIDs))
	copy(ids, s.sourceArticleIDs)
	return ids
}

func (s *Suggestion) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Suggestion) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Suggestion) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("suggestion ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("suggestion ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Suggestion) IsPending() bool {
	return s.status == StatusPending
}

// Accept marks the suggestion accepted. Only pending suggestions can be
// accepted.
func (s *Suggestion) Accept() error {
	if s.status != StatusPending {
		return fmt.Errorf("cannot accept a %s suggestion", s.status)
	}
	s.status = StatusAccepted
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Reject marks the suggestion rejected. Only pending suggestions can be
// rejected.
func (s *Suggestion) Reject() error {
	if s.status != StatusPending {
		return fmt.Errorf("cannot reject a %s suggestion", s.status)
	}
	s.status = StatusRejected
	s.updatedAt = biztime.NowUTC()
	return nil
}

// PrimaryArticleID returns the highest ranked source article.
func (s *Suggestion) PrimaryArticleID() uint {
	if len(s.sourceArticleIDs) == 0 {
		return 0
	}
	return s.sourceArticleIDs[0]
}
