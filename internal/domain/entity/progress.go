package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress records whether a user has completed a chapter. The
// (UserID, ChapterID) pair is unique; marking a chapter complete upserts it.
type UserProgress struct {
	UserID      uuid.UUID
	ChapterID   uuid.UUID
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourseProgress is the computed completion state of one user in one course,
// derived from UserProgress rows over the course's published chapters.
type CourseProgress struct {
	CompletedChapters int
	TotalChapters     int     // Published chapters only.
	Percentage        float64 // 0..100. Defined as 0 when the course has no published chapters.
}

// ComputeCourseProgress derives the completion percentage. A course with zero
// published chapters yields 0, not NaN.
func ComputeCourseProgress(completed, totalPublished int) CourseProgress {
	progress := CourseProgress{
		CompletedChapters: completed,
		TotalChapters:     totalPublished,
	}
	if totalPublished > 0 {
		progress.Percentage = float64(completed) / float64(totalPublished) * 100
	}

	return progress
}
