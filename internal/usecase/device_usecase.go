// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data for registering a push device token.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	Token    string
	Platform string
}

// DeviceUsecase defines the interface for push device registration.
type DeviceUsecase interface {
	// RegisterDevice upserts a device token for the user.
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) error

	// UnregisterDevice removes a device token. Idempotent.
	UnregisterDevice(ctx context.Context, token string) error
}
