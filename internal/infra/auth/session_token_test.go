package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenCodec_Generate(t *testing.T) {
	codec := NewSessionTokenCodec()

	token, err := codec.Generate()
	require.NoError(t, err)

	// 20 bytes of entropy encode to 32 unpadded base32 characters.
	assert.Len(t, token, 32)
	for _, r := range token {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", string(r))
	}
}

func TestSessionTokenCodec_Generate_Unique(t *testing.T) {
	codec := NewSessionTokenCodec()

	first, err := codec.Generate()
	require.NoError(t, err)
	second, err := codec.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionTokenCodec_Generate_CollisionFree(t *testing.T) {
	codec := NewSessionTokenCodec()

	seenTokens := make(map[string]bool, 10000)
	seenHashes := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		token, err := codec.Generate()
		require.NoError(t, err)
		require.False(t, seenTokens[token], "token collision after %d generations", i)
		seenTokens[token] = true

		hash := codec.Hash(token)
		require.False(t, seenHashes[hash], "hash collision after %d generations", i)
		seenHashes[hash] = true

		// Hashing must stay stable across repeated calls on the same token.
		require.Equal(t, hash, codec.Hash(token))
	}
}

func TestSessionTokenCodec_Hash_Deterministic(t *testing.T) {
	codec := NewSessionTokenCodec()

	hash := codec.Hash("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")

	// Hex-encoded SHA-256 digest.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, codec.Hash("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"))
	assert.NotEqual(t, hash, codec.Hash("ABCDEFGHIJKLMNOPQRSTUVWXYZ234566"))
}

func TestSessionTokenCodec_Hash_KnownValue(t *testing.T) {
	codec := NewSessionTokenCodec()

	// SHA-256 of "token" pinned so the storage key derivation never drifts;
	// existing sessions would all be orphaned by a change here.
	assert.Equal(t,
		"3c469e9d6c5875d37a43f353d4f88e61fcf812c66eee3457465a40b0da4153e0",
		codec.Hash("token"),
	)
}
