package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Course is an authored unit of content made of ordered chapters. A course is
// only publicly visible once published, and publishing is gated on
// completeness (see RequiredFieldsComplete).
type Course struct {
	ID           uuid.UUID
	InstructorID uuid.UUID // The user who authored and owns this course.
	Title        string
	Description  string
	ImageURL     string // Cover image location; required before publishing.
	Price        *int64 // Price in the smallest currency unit. Nil until the instructor sets one.
	IsPublished  bool
	Chapters     []*Chapter    // Ordered by Position. Deleting a course cascades to its chapters.
	Attachments  []*Attachment // Supplementary files; access requires purchase.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublishedChapterCount returns how many of the course's chapters are published.
func (c *Course) PublishedChapterCount() int {
	count := 0
	for _, ch := range c.Chapters {
		if ch.IsPublished {
			count++
		}
	}

	return count
}

// RequiredFieldsComplete reports whether every field the publish gate demands
// is present: title, description, image, price, and at least one published chapter.
func (c *Course) RequiredFieldsComplete() bool {
	completed, total := c.CompletedFieldCount()

	return completed == total
}

// CompletedFieldCount returns how many of the publish-gate fields are filled
// in, and the total number of gated fields.
func (c *Course) CompletedFieldCount() (completed, total int) {
	checks := []bool{
		c.Title != "",
		c.Description != "",
		c.ImageURL != "",
		c.Price != nil,
		c.PublishedChapterCount() > 0,
	}
	for _, ok := range checks {
		if ok {
			completed++
		}
	}

	return completed, len(checks)
}

// CompletionText renders the publish-gate progress for display, e.g. "(3/5)".
func (c *Course) CompletionText() string {
	completed, total := c.CompletedFieldCount()

	return fmt.Sprintf("(%d/%d)", completed, total)
}

// Chapter is a single lesson inside a course. Position defines the ordering
// within the parent course; IsFree chapters are viewable without a purchase.
type Chapter struct {
	ID           uuid.UUID
	CourseID     uuid.UUID
	Title        string
	Description  string
	Position     int    // 1-based order within the course.
	IsPublished  bool
	IsFree       bool   // Free chapters are accessible without purchasing the course.
	VideoKey     string // Object-storage key the client uploads the raw video to.
	VideoAssetID string // Assigned by the processing webhook once the upload is playable.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequiredFieldsComplete reports whether the chapter can be published:
// it needs a title and a processed video asset.
func (ch *Chapter) RequiredFieldsComplete() bool {
	completed, total := ch.CompletedFieldCount()

	return completed == total
}

// CompletedFieldCount returns how many of the chapter publish-gate fields are
// filled in, and the total number of gated fields.
func (ch *Chapter) CompletedFieldCount() (completed, total int) {
	checks := []bool{
		ch.Title != "",
		ch.VideoAssetID != "",
	}
	for _, ok := range checks {
		if ok {
			completed++
		}
	}

	return completed, len(checks)
}

// CompletionText renders the chapter publish-gate progress, e.g. "(1/2)".
func (ch *Chapter) CompletionText() string {
	completed, total := ch.CompletedFieldCount()

	return fmt.Sprintf("(%d/%d)", completed, total)
}

// Attachment is a supplementary file attached to a course, stored in the
// attachment blob bucket under ObjectKey.
type Attachment struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	Name      string
	ObjectKey string
	CreatedAt time.Time
}
