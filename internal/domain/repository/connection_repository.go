// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConnectionNotFound is returned when a credential record is not found.
var ErrConnectionNotFound = errors.New("connection not found")

// ConnectionRepository defines the standard operations for credential persistence.
// One user may hold several connections (email/password plus OAuth links).
type ConnectionRepository interface {
	// Create persists a new credential (email/password or an OAuth link).
	Create(ctx context.Context, conn *entity.Connection) error

	// Find retrieves a credential by its provider and provider-specific ID.
	Find(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Connection, error)

	// FindByUserAndProvider retrieves the credential a user holds at a given provider.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Connection, error)

	// ListByUserID retrieves every credential linked to a user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error)

	// Update modifies an existing credential (e.g. a password change).
	Update(ctx context.Context, conn *entity.Connection) error

	// Delete removes a credential by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
