// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the given ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for session persistence. Session
// IDs are token digests computed by the session token codec; the repository
// never sees a raw token.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (the token digest). Expiry is not
	// checked here; lazy expiry is the session service's responsibility.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// UpdateExpiry moves a session's expiry forward (sliding-window renewal).
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session unconditionally. Deleting an absent session is
	// not an error; invalidation must be idempotent.
	Delete(ctx context.Context, id string) error

	// ListByUserID retrieves all sessions belonging to a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// DeleteByUserID removes every session a user holds ("log out everywhere").
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all sessions whose expiry has passed.
	DeleteExpired(ctx context.Context) (int, error)
}
