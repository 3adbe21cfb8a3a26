package models

import "gorm.io/datatypes"

type SuggestionModel struct {
	ID               uint    `gorm:"primaryKey"`
	TicketID         uint    `gorm:"not null;index"`
	Response         string  `gorm:"type:text;not null"`
	Confidence       float64 `gorm:"not null"`
	Status           string  `gorm:"size:20;not null;index"`
	Model            string  `gorm:"size:100;not null"`
	SourceArticleIDs datatypes.JSON
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SuggestionModel) TableName() string {
	return "suggestions"
}

type FeedbackModel struct {
	ID           uint   `gorm:"primaryKey"`
	SuggestionID uint   `gorm:"not null;index"`
	TicketID     uint   `gorm:"not null;index"`
	Reason       string `gorm:"size:30;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "suggestion_feedback"
}
