package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:varchar(512)"`
	Price        *int64
	IsPublished  bool `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Chapters    []ChapterModel    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Attachments []AttachmentModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// ChapterModel mirrors the 'chapters' table. Position orders chapters within a course.
type ChapterModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Position     int       `gorm:"not null"`
	IsPublished  bool      `gorm:"not null;default:false"`
	IsFree       bool      `gorm:"not null;default:false"`
	VideoKey     string    `gorm:"type:varchar(512)"`
	VideoAssetID string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChapterModel) TableName() string {
	return "chapters"
}

// AttachmentModel mirrors the 'course_attachments' table.
type AttachmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ObjectKey string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttachmentModel) TableName() string {
	return "course_attachments"
}
