package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"parley/internal/domain/ticket"
	"parley/internal/infrastructure/persistence/mappers"
	"parley/internal/infrastructure/persistence/models"
	"parley/internal/infrastructure/pubsub"
	db "parley/internal/shared/db"
)

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	feed   pubsub.ChangePublisher
}

func NewNoteRepository(db *gorm.DB, feed pubsub.ChangePublisher) *NoteRepository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		feed:   feed,
	}
}

func (r *NoteRepository) Save(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}

	r.publish(ctx, pubsub.ChangeInsert, model.ID, model.TicketID)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NoteModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update note: %w", result.Error)
	}

	r.publish(ctx, pubsub.ChangeUpdate, model.ID, model.TicketID)
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, noteID uint) (*ticket.Note, error) {
	var model models.NoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, noteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("note not found")
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return r.mapper.NoteToDomain(&model)
}

func (r *NoteRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	var noteModels []models.NoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}

	notes := make([]*ticket.Note, len(noteModels))
	for i, model := range noteModels {
		n, err := r.mapper.NoteToDomain(&model)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}

	return notes, nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.NoteModel
	if err := tx.First(&model, noteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("note not found")
		}
		return fmt.Errorf("failed to find note: %w", err)
	}

	if err := tx.Delete(&models.NoteModel{}, noteID).Error; err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	r.publish(ctx, pubsub.ChangeDelete, noteID, model.TicketID)
	return nil
}

func (r *NoteRepository) publish(ctx context.Context, kind pubsub.ChangeKind, noteID, ticketID uint) {
	if r.feed == nil {
		return
	}
	_ = r.feed.PublishChange(ctx, pubsub.ChangeEvent{
		Table:    pubsub.TableNotes,
		Kind:     kind,
		ID:       noteID,
		TicketID: ticketID,
	})
}
