// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have on the platform.
type Role string

const (
	// RoleStudent indicates a regular learner account. New signups default to this role.
	RoleStudent Role = "student"
	// RoleInstructor indicates an account allowed to author and publish courses.
	RoleInstructor Role = "instructor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
