package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"parley/internal/domain/suggestion"
	"parley/internal/infrastructure/persistence/models"
)

type SuggestionMapper interface {
	ToModel(s *suggestion.Suggestion) (*models.SuggestionModel, error)
	ToDomain(model *models.SuggestionModel) (*suggestion.Suggestion, error)

	FeedbackToModel(f *suggestion.Feedback) *models.FeedbackModel
	FeedbackToDomain(model *models.FeedbackModel) (*suggestion.Feedback, error)
}

type SuggestionMapperImpl struct{}

func NewSuggestionMapper() SuggestionMapper {
	return &SuggestionMapperImpl{}
}

func (m *SuggestionMapperImpl) ToModel(s *suggestion.Suggestion) (*models.SuggestionModel, error) {
	sourceIDs, err := json.Marshal(s.SourceArticleIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode source article IDs: %w", err)
	}

	return &models.SuggestionModel{
		ID:               s.ID(),
		TicketID:         s.TicketID(),
		Response:         s.Response(),
		Confidence:       s.Confidence(),
		Status:           string(s.Status()),
		Model:            s.Model(),
		SourceArticleIDs: datatypes.JSON(sourceIDs),
		CreatedAt:        s.CreatedAt().UnixMilli(),
		UpdatedAt:        s.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *SuggestionMapperImpl) ToDomain(model *models.SuggestionModel) (*suggestion.Suggestion, error) {
	var sourceIDs []uint
	if len(model.SourceArticleIDs) > 0 {
		if err := json.Unmarshal(model.SourceArticleIDs, &sourceIDs); err != nil {
			return nil, fmt.Errorf("failed to decode source article IDs (id=%d): %w", model.ID, err)
		}
	}

	return suggestion.ReconstructSuggestion(
		model.ID,
		model.TicketID,
		model.Response,
		model.Confidence,
		suggestion.SuggestionStatus(model.Status),
		model.Model,
		sourceIDs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *SuggestionMapperImpl) FeedbackToModel(f *suggestion.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:           f.ID(),
		SuggestionID: f.SuggestionID(),
		TicketID:     f.TicketID(),
		Reason:       string(f.Reason()),
		CreatedAt:    f.CreatedAt().UnixMilli(),
	}
}

func (m *SuggestionMapperImpl) FeedbackToDomain(model *models.FeedbackModel) (*suggestion.Feedback, error) {
	return suggestion.ReconstructFeedback(
		model.ID,
		model.SuggestionID,
		model.TicketID,
		suggestion.RejectionReason(model.Reason),
		millisToTime(model.CreatedAt),
	)
}
