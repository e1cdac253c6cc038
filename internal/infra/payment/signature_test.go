package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"academy/config"
	domainerrors "academy/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func newTestVerifier(secret string) *hmacVerifier {
	cfg := &config.Config{
		Payment: &config.PaymentConfig{WebhookSecret: secret},
	}

	return NewWebhookVerifier(cfg).(*hmacVerifier)
}

func TestHMACVerifier_Verify(t *testing.T) {
	verifier := newTestVerifier("webhook-secret")
	body := []byte(`{"bill_id":"bill-1","status":"PAID"}`)

	assert.NoError(t, verifier.Verify(body, signBody("webhook-secret", body)))
}

func TestHMACVerifier_Verify_WrongSecret(t *testing.T) {
	verifier := newTestVerifier("webhook-secret")
	body := []byte(`{"bill_id":"bill-1","status":"PAID"}`)

	err := verifier.Verify(body, signBody("other-secret", body))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEBHOOK_SIGNATURE_INVALID", appErr.ErrorCode())
}

func TestHMACVerifier_Verify_TamperedBody(t *testing.T) {
	verifier := newTestVerifier("webhook-secret")
	body := []byte(`{"bill_id":"bill-1","status":"PAID"}`)
	signature := signBody("webhook-secret", body)

	tampered := []byte(`{"bill_id":"bill-2","status":"PAID"}`)
	assert.Error(t, verifier.Verify(tampered, signature))
}

func TestHMACVerifier_Verify_EmptySignature(t *testing.T) {
	verifier := newTestVerifier("webhook-secret")

	assert.Error(t, verifier.Verify([]byte("{}"), ""))
}
