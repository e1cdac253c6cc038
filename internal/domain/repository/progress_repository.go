package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProgressNotFound is returned when no progress record exists.
var ErrProgressNotFound = errors.New("progress not found")

// ProgressRepository defines the standard operations for per-chapter
// completion tracking.
type ProgressRepository interface {
	// Upsert creates or updates the progress record for a user and chapter.
	Upsert(ctx context.Context, progress *entity.UserProgress) error

	// Find retrieves the progress record for a user and chapter.
	Find(ctx context.Context, userID, chapterID uuid.UUID) (*entity.UserProgress, error)

	// CountCompleted returns how many of the given chapters the user has
	// marked completed.
	CountCompleted(ctx context.Context, userID uuid.UUID, chapterIDs []uuid.UUID) (int64, error)

	// ListByUserAndChapters retrieves the user's progress records for the
	// given chapters.
	ListByUserAndChapters(ctx context.Context, userID uuid.UUID, chapterIDs []uuid.UUID) ([]*entity.UserProgress, error)
}
