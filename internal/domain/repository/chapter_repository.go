package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChapterNotFound is returned when a chapter is not found.
var ErrChapterNotFound = errors.New("chapter not found")

// ChapterRepository defines the standard operations for chapter persistence.
type ChapterRepository interface {
	// Create persists a new chapter.
	Create(ctx context.Context, chapter *entity.Chapter) error

	// FindByID retrieves a chapter by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chapter, error)

	// FindByIDAndCourse retrieves a chapter scoped to a course.
	FindByIDAndCourse(ctx context.Context, id, courseID uuid.UUID) (*entity.Chapter, error)

	// FindByVideoKey retrieves the chapter holding a pending video upload.
	FindByVideoKey(ctx context.Context, videoKey string) (*entity.Chapter, error)

	// ListByCourse retrieves all chapters of a course ordered by position.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Chapter, error)

	// ListPublishedByCourse retrieves the published chapters of a course
	// ordered by position.
	ListPublishedByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Chapter, error)

	// CountPublishedByCourse returns the number of published chapters in a course.
	CountPublishedByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)

	// MaxPosition returns the highest position in a course, or -1 when the
	// course has no chapters.
	MaxPosition(ctx context.Context, courseID uuid.UUID) (int, error)

	// Update modifies a chapter.
	Update(ctx context.Context, chapter *entity.Chapter) error

	// UpdatePositions applies new positions for the given chapter IDs.
	UpdatePositions(ctx context.Context, courseID uuid.UUID, positions map[uuid.UUID]int) error

	// Delete removes a chapter by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
