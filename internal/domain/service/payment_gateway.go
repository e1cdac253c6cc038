package service

import (
	"context"

	"github.com/google/uuid"
)

// Bill represents a payment bill created at the gateway.
type Bill struct {
	ID         string // Gateway-assigned bill ID
	PaymentURL string // Hosted checkout page the client is redirected to
}

// BillStatus represents the gateway's view of a bill.
type BillStatus struct {
	ID     string
	Status string // NEW, PAID, EXPIRED, FAILED per the gateway's vocabulary
	Paid   bool
}

// PaymentGateway defines the interface for the external payment provider.
type PaymentGateway interface {
	// CreateBill opens a bill for the given amount (minor units) and returns
	// the hosted checkout details.
	CreateBill(ctx context.Context, purchaseID uuid.UUID, amount int64, description string) (*Bill, error)

	// GetBillStatus re-verifies a bill directly with the gateway. Webhook
	// payloads are never trusted on their own.
	GetBillStatus(ctx context.Context, billID string) (*BillStatus, error)
}

// WebhookVerifier defines the interface for checking gateway webhook
// signatures before a payload is processed.
type WebhookVerifier interface {
	// Verify checks the signature over the raw request body.
	Verify(body []byte, signature string) error
}
