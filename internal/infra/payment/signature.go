package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"academy/config"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
)

// hmacVerifier checks webhook signatures with HMAC-SHA256 over the raw body.
type hmacVerifier struct {
	secret []byte
}

// NewWebhookVerifier is the constructor for hmacVerifier.
func NewWebhookVerifier(cfg *config.Config) service.WebhookVerifier {
	var secret string
	if cfg.Payment != nil {
		secret = cfg.Payment.WebhookSecret
	}

	return &hmacVerifier{secret: []byte(secret)}
}

// Verify checks the hex-encoded signature over the raw request body.
func (v *hmacVerifier) Verify(body []byte, signature string) error {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domainerrors.ErrWebhookSignature
	}

	return nil
}
