// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressUsecase defines the interface for chapter completion tracking.
type ProgressUsecase interface {
	// SetChapterProgress marks a chapter complete or not for the user and
	// returns the recomputed course progress.
	SetChapterProgress(ctx context.Context, userID, courseID, chapterID uuid.UUID, completed bool) (*entity.CourseProgress, error)

	// GetCourseProgress computes the user's completion over the course's
	// published chapters. A course with no published chapters reports 0%.
	GetCourseProgress(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseProgress, error)
}
