package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// VerificationClaims defines the custom claims carried by the signed
// verification cookie. The cookie only identifies which pending verification
// the browser belongs to; the code itself never leaves the email channel.
type VerificationClaims struct {
	VerificationID uuid.UUID
	UserID         uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the signed
// verification cookie. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueVerificationToken creates a signed token binding a browser to a
	// pending email verification.
	IssueVerificationToken(verificationID, userID uuid.UUID) (string, error)

	// ParseVerificationToken checks the validity of a token string.
	ParseVerificationToken(tokenString string) (*VerificationClaims, error)
}
