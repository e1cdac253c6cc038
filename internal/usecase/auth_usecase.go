// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new email/password account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// VerifyEmailInput carries the code a user typed plus the claims recovered
// from their verification cookie.
type VerifyEmailInput struct {
	VerificationToken string
	Code              string
}

// GoogleCallbackInput carries the provider redirect parameters.
type GoogleCallbackInput struct {
	State string
	Code  string
}

// --- Output DTOs ---

// SignupOutput returns the pending account plus the signed cookie value that
// ties this browser to the verification challenge.
type SignupOutput struct {
	User              *entity.User
	VerificationToken string
}

// LoginOutput returns the raw session token after a successful login.
// The token goes into an HTTP-only cookie and is never persisted server-side.
// When the account exists but is unverified, SessionToken is empty and
// VerificationToken carries the cookie for a freshly issued code instead.
type LoginOutput struct {
	SessionToken      string
	VerificationToken string
	User              *entity.User
}

// GoogleLoginOutput returns the provider redirect URL for the OAuth flow.
type GoogleLoginOutput struct {
	AuthURL string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates an unverified account and emails a verification code.
	// Re-signing up over an unverified account replaces it; a verified
	// account yields ErrEmailTaken, an OAuth-only one ErrUseOAuthInstead.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// VerifyEmail consumes a one-time code. On success the account becomes
	// verified and a session is opened.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) (*LoginOutput, error)

	// ResendCode issues a fresh code for the pending verification, replacing
	// the outstanding one.
	ResendCode(ctx context.Context, verificationToken string) (*SignupOutput, error)

	// Login checks email/password credentials and opens a session. Unverified
	// accounts get a fresh verification challenge instead of a session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout invalidates the session behind the given raw token. Unknown
	// tokens are ignored; logout is idempotent.
	Logout(ctx context.Context, sessionToken string) error

	// BeginGoogleLogin starts the OAuth authorization-code flow.
	BeginGoogleLogin(ctx context.Context) (*GoogleLoginOutput, error)

	// CompleteGoogleLogin finishes the OAuth flow, upserting the user by
	// email, and opens a session. Provider-verified emails count as verified.
	CompleteGoogleLogin(ctx context.Context, input GoogleCallbackInput) (*LoginOutput, error)
}
