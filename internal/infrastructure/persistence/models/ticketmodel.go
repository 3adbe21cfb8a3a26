package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Number          string `gorm:"uniqueIndex;size:50;not null"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	CustomerID      uint   `gorm:"not null;index"`
	AssigneeID      *uint  `gorm:"index"`
	Rating          *int
	FirstResponseAt *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index"`
	AuthorID    uint           `gorm:"not null;index"`
	Content     datatypes.JSON `gorm:"not null"`
	AIGenerated bool           `gorm:"not null;default:false"`
	Attachments datatypes.JSON
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}

type NoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Body       string `gorm:"type:text;not null"`
	Visibility string `gorm:"size:20;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NoteModel) TableName() string {
	return "ticket_notes"
}

// TicketTagModel is the ticket/tag join row. Rows are replaced wholesale
// when a ticket's tag set changes.
type TicketTagModel struct {
	TicketID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID    uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (TicketTagModel) TableName() string {
	return "ticket_tags"
}
