package auth

import (
	"testing"
	"time"

	"academy/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Verification = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	verificationID := uuid.New()
	userID := uuid.New()

	token, err := svc.IssueVerificationToken(verificationID, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseVerificationToken(token)
	require.NoError(t, err)
	assert.Equal(t, verificationID, claims.VerificationID)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_Parse_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret")
	parser := newTestJWTService(t, "other-secret")

	token, err := issuer.IssueVerificationToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = parser.ParseVerificationToken(token)
	assert.Error(t, err)
}

func TestJWTService_Parse_Garbage(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	_, err := svc.ParseVerificationToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	svc.ttl = -time.Minute

	token, err := svc.IssueVerificationToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseVerificationToken(token)
	assert.Error(t, err)
}
