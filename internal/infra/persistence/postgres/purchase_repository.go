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

// purchaseRepository implements the repository.PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a new purchase.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyPurchased.WrapMessage("course already purchased")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCourseNotFound.WrapMessage("course does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindByUserAndCourse retrieves a user's purchase of a course.
func (repo *purchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&purchaseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByBillID retrieves a purchase by its payment gateway bill ID.
func (repo *purchaseRepository) FindByBillID(ctx context.Context, billID string) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		First(&purchaseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by bill id")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// Update modifies a purchase.
func (repo *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{ID: purchaseM.ID}).
		Select("BillID", "Status").
		Updates(purchaseM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update purchase")
	}

	return nil
}

// ListByUser retrieves all purchases of a user, newest first.
func (repo *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseMs []model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchaseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseMs))
	for i := range purchaseMs {
		purchases = append(purchases, toPurchaseDomain(&purchaseMs[i]))
	}

	return purchases, nil
}

// ListCompletedUserIDsByCourse retrieves the IDs of every user holding a
// completed purchase of the course.
func (repo *purchaseRepository) ListCompletedUserIDsByCourse(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("course_id = ? AND status = ?", courseID, string(entity.PurchaseStatusCompleted)).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchasers")
	}

	return userIDs, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:        data.ID,
		UserID:    data.UserID,
		CourseID:  data.CourseID,
		BillID:    data.BillID,
		Status:    entity.PurchaseStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:       data.ID,
		UserID:   data.UserID,
		CourseID: data.CourseID,
		BillID:   data.BillID,
		Status:   string(data.Status),
	}
}
