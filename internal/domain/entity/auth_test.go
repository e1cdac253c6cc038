package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Hour)))
	assert.True(t, session.Expired(now.Add(2*time.Hour)))
}

func TestSession_ExpiresWithin(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(SessionLifetime)}

	// A fresh session is outside the renewal window.
	assert.False(t, session.ExpiresWithin(now, SessionRenewalAfter))

	// Less than 15 days remaining puts it inside.
	later := now.Add(SessionLifetime - SessionRenewalAfter + time.Minute)
	assert.True(t, session.ExpiresWithin(later, SessionRenewalAfter))
}

func TestEmailVerification_Expired(t *testing.T) {
	now := time.Now()
	verification := &EmailVerification{ExpiresAt: now.Add(VerificationTTL)}

	assert.False(t, verification.Expired(now))
	assert.True(t, verification.Expired(now.Add(VerificationTTL)))
}
