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
)

// verificationRepository implements the repository.VerificationRepository interface using GORM.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Create persists a new verification record.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.EmailVerification) error {
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification")
	}

	verification.ID = verificationM.ID
	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

// FindByIDAndUser retrieves a verification by its ID scoped to the owning user.
func (repo *verificationRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.EmailVerification, error) {
	var verificationM model.VerificationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&verificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification")
	}

	return toVerificationDomain(&verificationM), nil
}

// Delete removes a verification record after consumption or supersession.
func (repo *verificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.VerificationModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification")
	}

	return nil
}

// DeleteByUserID removes every outstanding verification for a user.
func (repo *verificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.VerificationModel{}, "user_id = ?", userID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user verifications")
	}

	return nil
}

// --- Mapper Functions ---

// toVerificationDomain converts a GORM VerificationModel to a domain EmailVerification entity.
func toVerificationDomain(data *model.VerificationModel) *entity.EmailVerification {
	if data == nil {
		return nil
	}

	return &entity.EmailVerification{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromVerificationDomain converts a domain EmailVerification entity to a GORM VerificationModel.
func fromVerificationDomain(data *entity.EmailVerification) *model.VerificationModel {
	if data == nil {
		return nil
	}

	return &model.VerificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
