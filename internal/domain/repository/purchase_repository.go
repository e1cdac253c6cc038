package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPurchaseNotFound is returned when a purchase is not found.
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository defines the standard operations for purchase persistence.
type PurchaseRepository interface {
	// Create persists a new purchase.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByUserAndCourse retrieves a user's purchase of a course.
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Purchase, error)

	// FindByBillID retrieves a purchase by its payment gateway bill ID.
	FindByBillID(ctx context.Context, billID string) (*entity.Purchase, error)

	// Update modifies a purchase.
	Update(ctx context.Context, purchase *entity.Purchase) error

	// ListByUser retrieves all purchases of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)

	// ListCompletedUserIDsByCourse retrieves the IDs of every user holding a
	// completed purchase of the course.
	ListCompletedUserIDsByCourse(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}
