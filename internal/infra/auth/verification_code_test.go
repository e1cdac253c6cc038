package auth

import (
	"testing"

	"academy/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationCodeGenerator_Generate(t *testing.T) {
	gen := NewVerificationCodeGenerator()

	code, err := gen.Generate()
	require.NoError(t, err)

	assert.Len(t, code, entity.VerificationCodeLength)
	for _, r := range code {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", string(r))
	}
}

func TestVerificationCodeGenerator_Generate_Varies(t *testing.T) {
	gen := NewVerificationCodeGenerator()

	seen := make(map[string]bool)
	for range 10 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = true
	}

	assert.Greater(t, len(seen), 1)
}
