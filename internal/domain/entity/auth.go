// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Connection represents a single way of logging in (a credential).
// A user's email/password is one record; a linked Google account is another.
type Connection struct {
	ID             uuid.UUID    // The unique ID for this specific credential record.
	UserID         uuid.UUID    // Links this credential to the User it belongs to.
	Provider       ProviderType // The credential provider, e.g. "email" or "google".
	ProviderUserID string       // The user's unique ID at the provider (for "email" this is the email itself).
	PasswordHash   string       // The bcrypt password hash; only set when Provider is "email".
	CreatedAt      time.Time    // Timestamp of when this credential was linked to the account.
}

// Session represents an authorized browser session. The client holds an opaque
// random token in a cookie; the server stores only its SHA-256 digest, which
// doubles as the primary key. The raw token never touches the database.
type Session struct {
	ID        string    // Hex-encoded SHA-256 digest of the client-held token.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	ExpiresAt time.Time // The time after which this session is no longer valid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e. login time).
}

// Session lifetime policy. A session lives 30 days from creation, and a
// validation that finds less than 15 days remaining pushes expiry out another
// 30 days. Validations outside that window write nothing.
const (
	SessionLifetime     = 30 * 24 * time.Hour
	SessionRenewalAfter = 15 * 24 * time.Hour
)

// ExpiresWithin reports whether the session's remaining lifetime at the given
// instant is below the renewal threshold.
func (s *Session) ExpiresWithin(now time.Time, window time.Duration) bool {
	return now.Add(window).After(s.ExpiresAt)
}

// Expired reports whether the session is no longer valid at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
