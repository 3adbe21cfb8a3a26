package dto

import (
	"time"

	"parley/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	CustomerID      uint       `json:"customer_id"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	Tags            []string   `json:"tags"`
	Rating          *int       `json:"rating,omitempty"`
	FirstResponseAt *time.Time `json:"first_response_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AttachmentDTO struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	URL         string `json:"url"`
}

type MessageDTO struct {
	ID           uint            `json:"id"`
	TicketID     uint            `json:"ticket_id"`
	AuthorID     uint            `json:"author_id"`
	ContentKind  string          `json:"content_kind"`
	Text         string          `json:"text"`
	ArticleID    uint            `json:"article_id,omitempty"`
	ArticleTitle string          `json:"article_title,omitempty"`
	AIGenerated  bool            `json:"ai_generated"`
	Attachments  []AttachmentDTO `json:"attachments"`
	CreatedAt    time.Time       `json:"created_at"`
}

type NoteDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	Body       string    `json:"body"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:              t.ID(),
		Number:          t.Number(),
		Title:           t.Title(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CustomerID:      t.CustomerID(),
		AssigneeID:      t.AssigneeID(),
		Tags:            t.Tags(),
		Rating:          t.Rating(),
		FirstResponseAt: t.FirstResponseAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, FromTicket(t))
	}
	return dtos
}

// FromMessage maps a message; resolveURL turns a storage path into a
// client-reachable URL.
func FromMessage(m *ticket.Message, resolveURL func(string) string) *MessageDTO {
	content := m.Content()

	attachments := make([]AttachmentDTO, 0, len(m.Attachments()))
	for _, a := range m.Attachments() {
		url := a.StoragePath
		if resolveURL != nil {
			url = resolveURL(a.StoragePath)
		}
		attachments = append(attachments, AttachmentDTO{
			FileName:    a.FileName,
			ContentType: a.ContentType,
			SizeBytes:   a.SizeBytes,
			URL:         url,
		})
	}

	return &MessageDTO{
		ID:           m.ID(),
		TicketID:     m.TicketID(),
		AuthorID:     m.AuthorID(),
		ContentKind:  string(content.Kind),
		Text:         content.Text,
		ArticleID:    content.ArticleID,
		ArticleTitle: content.ArticleTitle,
		AIGenerated:  m.AIGenerated(),
		Attachments:  attachments,
		CreatedAt:    m.CreatedAt(),
	}
}

func FromNote(n *ticket.Note) *NoteDTO {
	return &NoteDTO{
		ID:         n.ID(),
		TicketID:   n.TicketID(),
		AuthorID:   n.AuthorID(),
		Body:       n.Body(),
		Visibility: n.Visibility().String(),
		CreatedAt:  n.CreatedAt(),
		UpdatedAt:  n.UpdatedAt(),
	}
}
