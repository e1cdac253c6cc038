package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockRepo "academy/internal/mocks/repository"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (*deviceService, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger()).(*deviceService)

	return service, deviceRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	var saved *entity.DeviceToken
	deviceRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, device *entity.DeviceToken) {
			saved = device
		}).
		Return(nil)

	err := service.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   userID,
		Token:    "fcm-token-1",
		Platform: "android",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "fcm-token-1", saved.Token)
	assert.Equal(t, "android", saved.Platform)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterDeviceInput
	}{
		{
			name:  "missing token",
			input: usecase.RegisterDeviceInput{UserID: uuid.New(), Platform: "ios"},
		},
		{
			name:  "unknown platform",
			input: usecase.RegisterDeviceInput{UserID: uuid.New(), Token: "t", Platform: "windows"},
		},
		{
			name:  "empty platform",
			input: usecase.RegisterDeviceInput{UserID: uuid.New(), Token: "t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestDeviceService(t)

			err := service.RegisterDevice(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	deviceRepo.EXPECT().
		DeleteByToken(ctx, "fcm-token-1").
		Return(nil)

	assert.NoError(t, service.UnregisterDevice(ctx, "fcm-token-1"))
}

func TestDeviceService_UnregisterDevice_MissingToken(t *testing.T) {
	service, _ := createTestDeviceService(t)

	err := service.UnregisterDevice(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
