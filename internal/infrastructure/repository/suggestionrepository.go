package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"parley/internal/domain/suggestion"
	"parley/internal/infrastructure/persistence/mappers"
	"parley/internal/infrastructure/persistence/models"
	"parley/internal/infrastructure/pubsub"
	db "parley/internal/shared/db"
)

type SuggestionRepository struct {
	db     *gorm.DB
	mapper mappers.SuggestionMapper
	feed   pubsub.ChangePublisher
}

func NewSuggestionRepository(db *gorm.DB, feed pubsub.ChangePublisher) *SuggestionRepository {
	return &SuggestionRepository{
		db:     db,
		mapper: mappers.NewSuggestionMapper(),
		feed:   feed,
	}
}

func (r *SuggestionRepository) Save(ctx context.Context, s *suggestion.Suggestion) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	r.publish(ctx, pubsub.ChangeInsert, model.ID, model.TicketID)
	return nil
}

func (r *SuggestionRepository) Update(ctx context.Context, s *suggestion.Suggestion) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.SuggestionModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update suggestion: %w", result.Error)
	}

	r.publish(ctx, pubsub.ChangeUpdate, model.ID, model.TicketID)
	return nil
}

func (r *SuggestionRepository) GetByID(ctx context.Context, suggestionID uint) (*suggestion.Suggestion, error) {
	var model models.SuggestionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, suggestionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("suggestion not found")
		}
		return nil, fmt.Errorf("failed to find suggestion: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetActiveByTicketID returns pending suggestions only. Accepted and
// rejected suggestions are terminal and no longer actionable.
func (r *SuggestionRepository) GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*suggestion.Suggestion, error) {
	var suggestionModels []models.SuggestionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND status = ?", ticketID, string(suggestion.StatusPending)).
		Order("created_at DESC").
		Find(&suggestionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find suggestions: %w", err)
	}

	suggestions := make([]*suggestion.Suggestion, len(suggestionModels))
	for i, model := range suggestionModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		suggestions[i] = s
	}

	return suggestions, nil
}

func (r *SuggestionRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.SuggestionModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count suggestions: %w", err)
	}

	return count > 0, nil
}

func (r *SuggestionRepository) publish(ctx context.Context, kind pubsub.ChangeKind, suggestionID, ticketID uint) {
	if r.feed == nil {
		return
	}
	_ = r.feed.PublishChange(ctx, pubsub.ChangeEvent{
		Table:    pubsub.TableSuggestions,
		Kind:     kind,
		ID:       suggestionID,
		TicketID: ticketID,
	})
}

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.SuggestionMapper
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		mapper: mappers.NewSuggestionMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *suggestion.Feedback) error {
	model := r.mapper.FeedbackToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FeedbackRepository) GetBySuggestionID(ctx context.Context, suggestionID uint) ([]*suggestion.Feedback, error) {
	var feedbackModels []models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("suggestion_id = ?", suggestionID).
		Order("created_at ASC").
		Find(&feedbackModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	feedback := make([]*suggestion.Feedback, len(feedbackModels))
	for i, model := range feedbackModels {
		f, err := r.mapper.FeedbackToDomain(&model)
		if err != nil {
			return nil, err
		}
		feedback[i] = f
	}

	return feedback, nil
}
