package auth

import (
	"crypto/rand"
	"encoding/base32"

	"github.com/pkg/errors"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"
)

// verificationCodeGenerator mints short email verification codes.
type verificationCodeGenerator struct{}

// NewVerificationCodeGenerator is the constructor for verificationCodeGenerator.
func NewVerificationCodeGenerator() service.VerificationCodeGenerator {
	return &verificationCodeGenerator{}
}

// Generate produces a code of upper-case letters and digits. Base32 keeps the
// alphabet free of characters users confuse when typing from an email.
func (g *verificationCodeGenerator) Generate() (string, error) {
	// 5 bits per output character.
	raw := make([]byte, entity.VerificationCodeLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	encoded := base32.StdEncoding.EncodeToString(raw)

	return encoded[:entity.VerificationCodeLength], nil
}
