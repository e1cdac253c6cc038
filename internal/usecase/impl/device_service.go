package impl

import (
	"context"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

var validPlatforms = map[string]bool{
	"ios":     true,
	"android": true,
	"web":     true,
}

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{deviceRepo: deviceRepo, logger: logger}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice upserts a device token for the user.
func (srv *deviceService) RegisterDevice(ctx context.Context, input usecase.RegisterDeviceInput) error {
	if input.Token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}
	if !validPlatforms[input.Platform] {
		return domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	device := &entity.DeviceToken{
		UserID:   input.UserID,
		Token:    input.Token,
		Platform: input.Platform,
	}
	if err := srv.deviceRepo.Save(ctx, device); err != nil {
		return errors.Wrap(err, "failed to save device token")
	}
	srv.log(ctx).Info("Device registered", slog.Any("user_id", input.UserID), slog.String("platform", input.Platform))

	return nil
}

// UnregisterDevice removes a device token. Idempotent.
func (srv *deviceService) UnregisterDevice(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	if err := srv.deviceRepo.DeleteByToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}
