package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressModel mirrors the 'user_progress' table. The (user_id, chapter_id)
// pair is the composite primary key, so completion marks upsert cleanly.
type ProgressModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChapterID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgressModel) TableName() string {
	return "user_progress"
}
