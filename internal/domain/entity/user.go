// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the platform. A person signs up once and
// may hold credentials from several providers (see Connection), but there is
// exactly one User row per email address.
type User struct {
	ID            uuid.UUID // The global unique identifier for the user.
	Email         string    // The user's primary contact email, used as the login identifier.
	Name          string    // The user's display name.
	Role          Role      // The user's role on the platform (student or instructor).
	EmailVerified bool      // Whether the user has proven ownership of their email address.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// IsVerified reports whether the user has completed email verification.
// OAuth-created accounts are verified at creation time by the provider.
func (u *User) IsVerified() bool {
	return u.EmailVerified
}
