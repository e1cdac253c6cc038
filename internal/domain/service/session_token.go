package service

// SessionTokenCodec defines the interface for minting opaque session tokens
// and deriving the storage key used to look them up. Only the derived key is
// ever persisted; the raw token lives exclusively in the client's cookie.
type SessionTokenCodec interface {
	// Generate mints a new opaque session token.
	Generate() (string, error)

	// Hash derives the storage key for a token. The same token always maps
	// to the same key, so lookups never need the raw token stored anywhere.
	Hash(token string) string
}
