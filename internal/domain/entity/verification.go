package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCodeLength is the number of characters in a one-time code.
// Codes use the digits+uppercase base32 alphabet so they fit the OTP input
// widget on the client.
const VerificationCodeLength = 6

// VerificationTTL is how long a one-time code stays valid after issuance.
const VerificationTTL = 10 * time.Minute

// EmailVerification is a one-time code challenge proving ownership of an
// email address. At most one record is active per user; issuing a new code
// supersedes (deletes) any outstanding one.
type EmailVerification struct {
	ID        uuid.UUID // The unique ID of this verification attempt; the client cookie carries only this, never the code.
	UserID    uuid.UUID // The user being verified.
	Email     string    // The address the code was sent to.
	Code      string    // The 6-character one-time code.
	ExpiresAt time.Time // The time after which the code can no longer be used.
	CreatedAt time.Time
}

// Expired reports whether the code's validity window has elapsed.
func (v *EmailVerification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
