// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutOutput returns the hosted checkout page for a new purchase.
type CheckoutOutput struct {
	Purchase   *entity.Purchase
	PaymentURL string
}

// WebhookInput carries a verified payment webhook payload.
type WebhookInput struct {
	BillID string
	Status string
}

// PurchaseUsecase defines the interface for buying course access.
type PurchaseUsecase interface {
	// Checkout opens a gateway bill for a published course. Free re-checkout
	// of an already completed purchase fails with ErrAlreadyPurchased; a
	// pending purchase yields its existing payment URL.
	Checkout(ctx context.Context, userID, courseID uuid.UUID) (*CheckoutOutput, error)

	// HandleWebhook settles a purchase from a gateway notification. The bill
	// status is re-verified against the gateway before any state change.
	HandleWebhook(ctx context.Context, input WebhookInput) error

	// ListMyPurchases lists the user's purchases, newest first.
	ListMyPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)

	// HasAccess reports whether the user holds a completed purchase of the course.
	HasAccess(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}
