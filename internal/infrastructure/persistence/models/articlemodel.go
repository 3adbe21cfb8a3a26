package models

import "github.com/pgvector/pgvector-go"

type ArticleModel struct {
	ID         uint             `gorm:"primaryKey"`
	Title      string           `gorm:"size:200;not null"`
	Content    string           `gorm:"type:text;not null"`
	IsPublic   bool             `gorm:"not null;default:false;index"`
	AuthorID   uint             `gorm:"not null;index"`
	Embedding  *pgvector.Vector `gorm:"type:vector(1536)"`
	EmbeddedAt *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return "kb_articles"
}
