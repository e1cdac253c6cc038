package entity

// ProviderType identifies the origin of a credential.
type ProviderType string

const (
	// ProviderTypeEmail is the email/password credential managed by this service.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is a linked Google Sign-In credential.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}
