package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus is the settlement state of a purchase.
type PurchaseStatus string

const (
	// PurchaseStatusPending means a gateway bill was created but not yet paid.
	PurchaseStatusPending PurchaseStatus = "pending"
	// PurchaseStatusCompleted means the gateway confirmed payment; access is granted.
	PurchaseStatusCompleted PurchaseStatus = "completed"
	// PurchaseStatusFailed means the gateway reported the bill as failed or cancelled.
	PurchaseStatusFailed PurchaseStatus = "failed"
)

// Purchase grants a user access to the non-free chapters and attachments of a
// course. The (UserID, CourseID) pair is unique, enforced by the database.
type Purchase struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CourseID  uuid.UUID
	BillID    string // The payment gateway's bill identifier for this purchase.
	Status    PurchaseStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Grants reports whether this purchase currently grants content access.
func (p *Purchase) Grants() bool {
	return p.Status == PurchaseStatusCompleted
}
