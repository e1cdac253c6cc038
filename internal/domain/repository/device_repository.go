package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the standard operations for push device tokens.
type DeviceRepository interface {
	// Save upserts a device token, keyed by the token string.
	Save(ctx context.Context, device *entity.DeviceToken) error

	// ListByUserIDs retrieves the device tokens of the given users.
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteByToken removes a device token; missing tokens are not an error.
	DeleteByToken(ctx context.Context, token string) error
}
