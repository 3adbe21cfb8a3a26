package ticket

import (
	"fmt"
	"time"

	"parley/internal/shared/biztime"

	vo "parley/internal/domain/ticket/value_objects"
)

// Message is a conversation entry on a ticket. Messages are immutable after
// creation; the author may delete one but never edit it.
type Message struct {
	id          uint
	ticketID    uint
	authorID    uint
	content     vo.MessageContent
	aiGenerated bool
	attachments []Attachment
	createdAt   time.Time
}

// Attachment is a file reference carried by a message.
type Attachment struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	StoragePath string
}

func NewMessage(
	ticketID uint,
	authorID uint,
	content vo.MessageContent,
	aiGenerated bool,
	attachments []Attachment,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !content.IsValid() {
		return nil, fmt.Errorf("invalid message content")
	}

	for _, a := range attachments {
		if len(a.FileName) == 0 {
			return nil, fmt.Errorf("attachment file name cannot be empty")
		}
		if a.SizeBytes <= 0 {
			return nil, fmt.Errorf("attachment size must be positive")
		}
		if len(a.StoragePath) == 0 {
			return nil, fmt.Errorf("attachment storage path cannot be empty")
		}
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Message{
		ticketID:    ticketID,
		authorID:    authorID,
		content:     content,
		aiGenerated: aiGenerated,
		attachments: attachments,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	authorID uint,
	content vo.MessageContent,
	aiGenerated bool,
	attachments []Attachment,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !content.IsValid() {
		return nil, fmt.Errorf("invalid message content")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		content:     content,
		aiGenerated: aiGenerated,
		attachments: attachments,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) AuthorID() uint {
	return m.authorID
}

func (m *Message) Content() vo.MessageContent {
	return m.content
}

func (m *Message) AIGenerated() bool {
	return m.aiGenerated
}

func (m *Message) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(m.attachments))
	copy(attachmentsCopy, m.attachments)
	return attachmentsCopy
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// CanBeDeletedBy reports whether the given user may delete this message.
func (m *Message) CanBeDeletedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return m.authorID == userID
}
