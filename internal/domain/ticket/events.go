package ticket

import (
	"strconv"
	"time"
)

const (
	EventTypeTicketCreated         = "ticket.created"
	EventTypeTicketAssigned        = "ticket.assigned"
	EventTypeTicketStatusChanged   = "ticket.status_changed"
	EventTypeTicketPriorityChanged = "ticket.priority_changed"
	EventTypeTicketRated           = "ticket.rated"
	EventTypeMessageAdded          = "ticket.message_added"
	EventTypeNoteAdded             = "ticket.note_added"
)

type TicketCreatedEvent struct {
	TicketID    uint
	Number      string
	Title       string
	Description string
	CustomerID  uint
	Priority    string
	Timestamp   time.Time
}

func NewTicketCreatedEvent(
	ticketID uint,
	number string,
	title string,
	description string,
	customerID uint,
	priority string,
	timestamp time.Time,
) TicketCreatedEvent {
	return TicketCreatedEvent{
		TicketID:    ticketID,
		Number:      number,
		Title:       title,
		Description: description,
		CustomerID:  customerID,
		Priority:    priority,
		Timestamp:   timestamp,
	}
}

type TicketAssignedEvent struct {
	TicketID   uint
	Number     string
	Title      string
	AssigneeID uint
	AssignedBy uint
	Timestamp  time.Time
}

func NewTicketAssignedEvent(
	ticketID uint,
	number string,
	title string,
	assigneeID uint,
	assignedBy uint,
	timestamp time.Time,
) TicketAssignedEvent {
	return TicketAssignedEvent{
		TicketID:   ticketID,
		Number:     number,
		Title:      title,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
		Timestamp:  timestamp,
	}
}

type TicketStatusChangedEvent struct {
	TicketID  uint
	Number    string
	Title     string
	OldStatus string
	NewStatus string
	ChangedBy uint
	Timestamp time.Time
}

func NewTicketStatusChangedEvent(
	ticketID uint,
	number string,
	title string,
	oldStatus string,
	newStatus string,
	changedBy uint,
	timestamp time.Time,
) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		TicketID:  ticketID,
		Number:    number,
		Title:     title,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Timestamp: timestamp,
	}
}

type TicketPriorityChangedEvent struct {
	TicketID    uint
	OldPriority string
	NewPriority string
	ChangedBy   uint
	Timestamp   time.Time
}

func NewTicketPriorityChangedEvent(
	ticketID uint,
	oldPriority string,
	newPriority string,
	changedBy uint,
	timestamp time.Time,
) TicketPriorityChangedEvent {
	return TicketPriorityChangedEvent{
		TicketID:    ticketID,
		OldPriority: oldPriority,
		NewPriority: newPriority,
		ChangedBy:   changedBy,
		Timestamp:   timestamp,
	}
}

type TicketRatedEvent struct {
	TicketID  uint
	Rating    int
	RatedBy   uint
	Timestamp time.Time
}

func NewTicketRatedEvent(
	ticketID uint,
	rating int,
	ratedBy uint,
	timestamp time.Time,
) TicketRatedEvent {
	return TicketRatedEvent{
		TicketID:  ticketID,
		Rating:    rating,
		RatedBy:   ratedBy,
		Timestamp: timestamp,
	}
}

type MessageAddedEvent struct {
	TicketID    uint
	MessageID   uint
	AuthorID    uint
	AIGenerated bool
	Timestamp   time.Time
}

func NewMessageAddedEvent(
	ticketID uint,
	messageID uint,
	authorID uint,
	aiGenerated bool,
	timestamp time.Time,
) MessageAddedEvent {
	return MessageAddedEvent{
		TicketID:    ticketID,
		MessageID:   messageID,
		AuthorID:    authorID,
		AIGenerated: aiGenerated,
		Timestamp:   timestamp,
	}
}

type NoteAddedEvent struct {
	TicketID   uint
	NoteID     uint
	AuthorID   uint
	Visibility string
	Timestamp  time.Time
}

func NewNoteAddedEvent(
	ticketID uint,
	noteID uint,
	authorID uint,
	visibility string,
	timestamp time.Time,
) NoteAddedEvent {
	return NoteAddedEvent{
		TicketID:   ticketID,
		NoteID:     noteID,
		AuthorID:   authorID,
		Visibility: visibility,
		Timestamp:  timestamp,
	}
}

func (e TicketCreatedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e TicketCreatedEvent) GetEventType() string {
	return EventTypeTicketCreated
}

func (e TicketCreatedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e TicketAssignedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e TicketAssignedEvent) GetEventType() string {
	return EventTypeTicketAssigned
}

func (e TicketAssignedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e TicketStatusChangedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e TicketStatusChangedEvent) GetEventType() string {
	return EventTypeTicketStatusChanged
}

func (e TicketStatusChangedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e TicketPriorityChangedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e TicketPriorityChangedEvent) GetEventType() string {
	return EventTypeTicketPriorityChanged
}

func (e TicketPriorityChangedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e TicketRatedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e TicketRatedEvent) GetEventType() string {
	return EventTypeTicketRated
}

func (e TicketRatedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e MessageAddedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e MessageAddedEvent) GetEventType() string {
	return EventTypeMessageAdded
}

func (e MessageAddedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}

func (e NoteAddedEvent) GetAggregateID() string {
	return strconv.FormatUint(uint64(e.TicketID), 10)
}

func (e NoteAddedEvent) GetEventType() string {
	return EventTypeNoteAdded
}

func (e NoteAddedEvent) GetOccurredAt() time.Time {
	return e.Timestamp
}
