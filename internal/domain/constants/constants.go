// Package constants holds shared domain-level constant values.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cookie names used by the HTTP delivery layer.
const (
	SessionCookieName      = "session_token"
	VerificationCookieName = "verification_token"
)
