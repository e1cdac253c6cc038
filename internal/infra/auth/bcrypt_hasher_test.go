package auth

import (
	"testing"

	"academy/config"
	domainerrors "academy/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_Hash_Salted(t *testing.T) {
	hasher := newTestHasher(nil)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidateStrength_NoPolicy(t *testing.T) {
	hasher := newTestHasher(nil)

	assert.NoError(t, hasher.ValidateStrength("a"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	assert.NoError(t, hasher.ValidateStrength("Str0ng!pass"))

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "S0r!t"},
		{"missing uppercase", "weak1pass!"},
		{"missing lowercase", "WEAK1PASS!"},
		{"missing number", "Weakpass!!"},
		{"missing special", "Weakpass11"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidateStrength(tc.password)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tc.name)
		})
	}
}
