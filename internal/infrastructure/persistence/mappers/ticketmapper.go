package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"parley/internal/domain/ticket"
	vo "parley/internal/domain/ticket/value_objects"
	"parley/internal/infrastructure/persistence/models"
)

// TicketMapper handles conversion between ticket domain entities and
// persistence models. Tag names live in a join table, so ToDomain takes
// them separately.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, tags []string) (*ticket.Ticket, error)

	MessageToModel(m *ticket.Message) (*models.MessageModel, error)
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)

	NoteToModel(n *ticket.Note) *models.NoteModel
	NoteToDomain(model *models.NoteModel) (*ticket.Note, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CustomerID:  t.CustomerID(),
		AssigneeID:  t.AssigneeID(),
		Rating:      t.Rating(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if t.FirstResponseAt() != nil {
		first := t.FirstResponseAt().UnixMilli()
		model.FirstResponseAt = &first
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, tags []string) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	var firstResponseAt *time.Time
	if model.FirstResponseAt != nil {
		t := millisToTime(*model.FirstResponseAt)
		firstResponseAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		priority,
		status,
		model.CustomerID,
		model.AssigneeID,
		tags,
		model.Rating,
		firstResponseAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) (*models.MessageModel, error) {
	content, err := msg.Content().Encode()
	if err != nil {
		return nil, err
	}

	model := &models.MessageModel{
		ID:          msg.ID(),
		TicketID:    msg.TicketID(),
		AuthorID:    msg.AuthorID(),
		Content:     datatypes.JSON(content),
		AIGenerated: msg.AIGenerated(),
		CreatedAt:   msg.CreatedAt().UnixMilli(),
	}

	if attachments := msg.Attachments(); len(attachments) > 0 {
		data, err := json.Marshal(attachments)
		if err != nil {
			return nil, fmt.Errorf("failed to encode attachments: %w", err)
		}
		model.Attachments = datatypes.JSON(data)
	}

	return model, nil
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	content, err := vo.DecodeMessageContent(string(model.Content))
	if err != nil {
		return nil, fmt.Errorf("invalid message content (id=%d): %w", model.ID, err)
	}

	var attachments []ticket.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to decode attachments (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.AuthorID,
		content,
		model.AIGenerated,
		attachments,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) NoteToModel(n *ticket.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:         n.ID(),
		TicketID:   n.TicketID(),
		AuthorID:   n.AuthorID(),
		Body:       n.Body(),
		Visibility: n.Visibility().String(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
		UpdatedAt:  n.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) NoteToDomain(model *models.NoteModel) (*ticket.Note, error) {
	visibility, err := vo.NewNoteVisibility(model.Visibility)
	if err != nil {
		return nil, fmt.Errorf("invalid note visibility (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructNote(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		visibility,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
