// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session lifecycle operations.
// Raw tokens cross this boundary; everything below it works on token digests.
type SessionUsecase interface {
	// Create opens a new session for a user and returns the raw token.
	Create(ctx context.Context, userID uuid.UUID) (string, error)

	// Validate resolves a raw token to its session. Unknown tokens resolve to
	// (nil, nil); an expired session is removed and also resolves to
	// (nil, nil). A session inside the renewal window gets its expiry pushed
	// out as a side effect.
	Validate(ctx context.Context, token string) (*entity.Session, error)

	// Invalidate removes the session behind a raw token. Idempotent.
	Invalidate(ctx context.Context, token string) error

	// GetActiveSessions lists a user's sessions, newest first.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// RevokeSession removes one of the user's sessions by its ID (digest).
	RevokeSession(ctx context.Context, userID uuid.UUID, sessionID string) error

	// RevokeAllSessions removes every session the user holds.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// CleanupExpiredSessions removes expired rows and reports how many went.
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
