// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationNotFound is returned when no verification record matches.
var ErrVerificationNotFound = errors.New("email verification not found")

// VerificationRepository defines the operations for one-time email
// verification codes.
type VerificationRepository interface {
	// Create persists a new verification record.
	Create(ctx context.Context, verification *entity.EmailVerification) error

	// FindByIDAndUser retrieves a verification by its ID scoped to the owning
	// user, so one user cannot consume another's challenge.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.EmailVerification, error)

	// Delete removes a verification record after consumption or supersession.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every outstanding verification for a user. Called
	// before issuing a new code so at most one code is active per user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
