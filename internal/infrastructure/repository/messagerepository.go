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

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	feed   pubsub.ChangePublisher
}

func NewMessageRepository(db *gorm.DB, feed pubsub.ChangePublisher) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		feed:   feed,
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model, err := r.mapper.MessageToModel(m)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	r.publish(ctx, pubsub.ChangeInsert, model.ID, model.TicketID)
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, messageID uint) (*ticket.Message, error) {
	var model models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, messageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("message not found")
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}

	return r.mapper.MessageToDomain(&model)
}

func (r *MessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	messages := make([]*ticket.Message, len(messageModels))
	for i, model := range messageModels {
		m, err := r.mapper.MessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = m
	}

	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, messageID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.MessageModel
	if err := tx.First(&model, messageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("message not found")
		}
		return fmt.Errorf("failed to find message: %w", err)
	}

	if err := tx.Delete(&models.MessageModel{}, messageID).Error; err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	r.publish(ctx, pubsub.ChangeDelete, messageID, model.TicketID)
	return nil
}

func (r *MessageRepository) publish(ctx context.Context, kind pubsub.ChangeKind, messageID, ticketID uint) {
	if r.feed == nil {
		return
	}
	_ = r.feed.PublishChange(ctx, pubsub.ChangeEvent{
		Table:    pubsub.TableMessages,
		Kind:     kind,
		ID:       messageID,
		TicketID: ticketID,
	})
}
