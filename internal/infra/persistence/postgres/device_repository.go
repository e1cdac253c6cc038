package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Save upserts a device token, keyed by the token string. Re-registering a
// token moves it to the new user.
func (repo *deviceRepository) Save(ctx context.Context, device *entity.DeviceToken) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save device token")
	}

	device.ID = deviceM.ID

	return nil
}

// ListByUserIDs retrieves the device tokens of the given users.
func (repo *deviceRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceMs []model.DeviceModel
	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&deviceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device tokens")
	}

	devices := make([]*entity.DeviceToken, 0, len(deviceMs))
	for i := range deviceMs {
		devices = append(devices, toDeviceDomain(&deviceMs[i]))
	}

	return devices, nil
}

// DeleteByToken removes a device token; missing tokens are not an error.
func (repo *deviceRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).Delete(&model.DeviceModel{}, "token = ?", token).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete device token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain DeviceToken entity.
func toDeviceDomain(data *model.DeviceModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain DeviceToken entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.DeviceToken) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Token:    data.Token,
		Platform: data.Platform,
	}
}
