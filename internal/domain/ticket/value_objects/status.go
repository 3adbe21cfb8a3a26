package value_objects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusOpen       TicketStatus = "open"
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusOpen:       true,
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// Reopening a resolved or closed ticket transitions back to open; there is
// no dedicated reopened status.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusOpen,
		StatusInProgress,
		StatusClosed,
	},
	StatusOpen: {
		StatusPending,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusPending: {
		StatusOpen,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusPending,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusOpen,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// AllowsRating reports whether a satisfaction rating may be recorded.
func (ts TicketStatus) AllowsRating() bool {
	return ts == StatusResolved || ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
