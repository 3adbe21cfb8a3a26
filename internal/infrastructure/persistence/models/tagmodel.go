package models

type TagModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:30;not null"`
	NormalizedName string `gorm:"uniqueIndex;size:30;not null"`
	Color          string `gorm:"size:7;not null"`
	UsageCount     int    `gorm:"not null;default:0"`
	LastUsedAt     *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}
