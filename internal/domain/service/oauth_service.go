package service

import (
	"context"
	"time"

	"academy/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, apple, etc.)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
	Locale        string              // User's locale/language preference
}

// OAuthService defines the interface for authorization-code OAuth flows
// with PKCE. The use case layer drives the redirect and callback legs
// without knowing provider specifics.
type OAuthService interface {
	// AuthCodeURL builds the provider authorization URL for the given state
	// and PKCE code challenge.
	AuthCodeURL(state, codeChallenge string) string

	// Exchange swaps an authorization code (plus the PKCE verifier that
	// produced the challenge) for the provider's view of the user.
	Exchange(ctx context.Context, code, codeVerifier string) (*OAuthUser, error)

	// Provider returns the OAuth provider type.
	Provider() entity.ProviderType
}

// OAuthStateStore defines the interface for short-lived OAuth flow state.
// Each state value is single-use: Take removes it as it reads.
type OAuthStateStore interface {
	// Save stores the PKCE verifier under the state value with a TTL.
	Save(ctx context.Context, state, codeVerifier string, ttl time.Duration) error

	// Take retrieves and deletes the verifier stored under state.
	// Unknown or already-consumed states return an error.
	Take(ctx context.Context, state string) (string, error)
}
