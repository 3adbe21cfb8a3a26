package ticket

import (
	"fmt"
	"time"

	"parley/internal/shared/biztime"

	vo "parley/internal/domain/ticket/value_objects"
)

// Note is a staff annotation on a ticket. Unlike messages, notes can be
// edited, but only by their author.
type Note struct {
	id         uint
	ticketID   uint
	authorID   uint
	body       string
	visibility vo.NoteVisibility
	createdAt  time.Time
	updatedAt  time.Time
}

func NewNote(
	ticketID uint,
	authorID uint,
	body string,
	visibility vo.NoteVisibility,
) (*Note, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("note body cannot be empty")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("note body exceeds maximum length of 5000 characters")
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid note visibility")
	}

	now := biztime.NowUTC()
	return &Note{
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		visibility: visibility,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructNote(
	id uint,
	ticketID uint,
	authorID uint,
	body string,
	visibility vo.NoteVisibility,
	createdAt, updatedAt time.Time,
) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !visibility.IsValid() {
		return nil, fmt.Errorf("invalid note visibility")
	}

	return &Note{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		visibility: visibility,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) TicketID() uint {
	return n.ticketID
}

func (n *Note) AuthorID() uint {
	return n.authorID
}

func (n *Note) Body() string {
	return n.body
}

func (n *Note) Visibility() vo.NoteVisibility {
	return n.visibility
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

// UpdateBody edits the note text. Only the author may edit.
func (n *Note) UpdateBody(body string, editedBy uint) error {
	if editedBy != n.authorID {
		return fmt.Errorf("only the note's author can edit it")
	}
	if len(body) == 0 {
		return fmt.Errorf("note body cannot be empty")
	}
	if len(body) > 5000 {
		return fmt.Errorf("note body exceeds maximum length of 5000 characters")
	}

	n.body = body
	n.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeVisibility adjusts who can read the note. Only the author may change
// visibility.
func (n *Note) ChangeVisibility(visibility vo.NoteVisibility, changedBy uint) error {
	if changedBy != n.authorID {
		return fmt.Errorf("only the note's author can change its visibility")
	}
	if !visibility.IsValid() {
		return fmt.Errorf("invalid note visibility")
	}

	n.visibility = visibility
	n.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeDeletedBy reports whether the given user may delete this note.
func (n *Note) CanBeDeletedBy(userID uint) bool {
	return n.authorID == userID
}

// CanBeViewedBy reports whether the given staff user may read this note.
// Notes are never shown to customers regardless of visibility.
func (n *Note) CanBeViewedBy(userID uint, role string) bool {
	if role != "admin" && role != "agent" {
		return false
	}

	switch n.visibility {
	case vo.VisibilityPrivate:
		return n.authorID == userID
	case vo.VisibilityTeam, vo.VisibilityPublic:
		return true
	default:
		return false
	}
}
