package ticket

import (
	"fmt"
	"strings"
	"time"

	"parley/internal/shared/biztime"

	vo "parley/internal/domain/ticket/value_objects"
)

// MaxTagsPerTicket caps the tag set of a single ticket.
const MaxTagsPerTicket = 3

type Ticket struct {
	id              uint
	number          string
	title           string
	description     string
	priority        vo.Priority
	status          vo.TicketStatus
	customerID      uint
	assigneeID      *uint
	tags            []string
	rating          *int
	firstResponseAt *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	customerID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusNew,
		customerID:  customerID,
		tags:        []string{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	customerID uint,
	assigneeID *uint,
	tags []string,
	rating *int,
	firstResponseAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:              id,
		number:          number,
		title:           title,
		description:     description,
		priority:        priority,
		status:          status,
		customerID:      customerID,
		assigneeID:      assigneeID,
		tags:            tags,
		rating:          rating,
		firstResponseAt: firstResponseAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CustomerID() uint {
	return t.customerID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) Rating() *int {
	return t.rating
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) UpdateDetails(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	t.title = title
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()

	if t.status.IsNew() {
		t.status = vo.StatusOpen
	}

	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority, changedBy uint) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()

	return nil
}

// SetTags replaces the ticket's tag set. The cap is checked here before any
// store round trip.
func (t *Ticket) SetTags(tags []string) error {
	if len(tags) > MaxTagsPerTicket {
		return fmt.Errorf("a ticket cannot have more than %d tags", MaxTagsPerTicket)
	}

	// Tag names resolve case-insensitively, so "Bug" and "bug" are the
	// same tag and must collapse here rather than collide downstream.
	seen := make(map[string]bool, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" {
			return fmt.Errorf("tag name cannot be empty")
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, tag)
	}

	t.tags = deduped
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Rate records a satisfaction rating. Only resolved or closed tickets can be
// rated, and only by the customer that filed them.
func (t *Ticket) Rate(rating int, ratedBy uint) error {
	if ratedBy != t.customerID {
		return fmt.Errorf("only the ticket's customer can rate it")
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if !t.status.AllowsRating() {
		return fmt.Errorf("only resolved or closed tickets can be rated")
	}

	t.rating = &rating
	t.updatedAt = biztime.NowUTC()
	return nil
}

// MarkFirstResponse records the first staff response time. It is a no-op
// when a response was already recorded.
func (t *Ticket) MarkFirstResponse(at time.Time) {
	if t.firstResponseAt != nil {
		return
	}
	utc := at.UTC()
	t.firstResponseAt = &utc
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) HasFirstResponse() bool {
	return t.firstResponseAt != nil
}

func (t *Ticket) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" || role == "agent" {
		return true
	}

	if t.customerID == userID {
		return true
	}

	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}

	return false
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	if len(t.tags) > MaxTagsPerTicket {
		return fmt.Errorf("a ticket cannot have more than %d tags", MaxTagsPerTicket)
	}
	return nil
}
