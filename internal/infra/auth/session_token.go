package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"

	"github.com/pkg/errors"

	"academy/internal/domain/service"
)

// tokenEntropyBytes is the raw entropy behind each session token.
const tokenEntropyBytes = 20

// tokenEncoding renders tokens as unpadded upper-case base32 so they are
// cookie- and URL-safe without escaping.
var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// sessionTokenCodec is a concrete implementation of the SessionTokenCodec interface.
type sessionTokenCodec struct{}

// NewSessionTokenCodec is the constructor for sessionTokenCodec.
func NewSessionTokenCodec() service.SessionTokenCodec {
	return &sessionTokenCodec{}
}

// Generate mints a new opaque session token from the system CSPRNG.
func (c *sessionTokenCodec) Generate() (string, error) {
	raw := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return tokenEncoding.EncodeToString(raw), nil
}

// Hash derives the session storage key as the hex SHA-256 of the token.
// A leaked session table therefore never exposes usable tokens.
func (c *sessionTokenCodec) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
