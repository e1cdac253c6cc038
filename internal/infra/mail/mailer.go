// Package mail provides transactional email delivery.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"academy/config"
	"academy/internal/domain/service"
)

const sendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// NewMailer builds a Mailer from configuration. Non-http providers fall back
// to logging the code, which keeps development environments mail-free.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail != nil && cfg.Mail.Provider == "http" {
		return &httpMailer{
			apiKey:     cfg.Mail.APIKey,
			fromEmail:  cfg.Mail.FromEmail,
			fromName:   cfg.Mail.FromName,
			httpClient: &http.Client{Timeout: 15 * time.Second},
		}
	}

	return &logMailer{logger: logger}
}

// httpMailer sends through the SendGrid HTTP API.
type httpMailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// SendGrid request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []struct {
		To []sgEmail `json:"to"`
	} `json:"personalizations"`
	From    sgEmail     `json:"from"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

func (m *httpMailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	body := sgRequest{
		Personalizations: []struct {
			To []sgEmail `json:"to"`
		}{
			{To: []sgEmail{{Email: to, Name: name}}},
		},
		From: sgEmail{
			Email: m.fromEmail,
			Name:  m.fromName,
		},
		Subject: "Your verification code",
		Content: []sgContent{
			{
				Type:  "text/plain",
				Value: fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in 10 minutes.\n\nIf you did not create an account, you can ignore this email.\n", name, code),
			},
		},
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal mail request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendEndpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return errors.Wrap(err, "build mail request")
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send mail request")
	}
	defer resp.Body.Close()

	// The API returns 202 on success.
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)

		return errors.Errorf("mail api error: status=%d body=%s", resp.StatusCode, respBody)
	}

	return nil
}

// logMailer writes codes to the log instead of sending mail.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendVerificationCode(_ context.Context, to, name, code string) error {
	m.logger.Info("verification code issued",
		slog.String("to", to),
		slog.String("name", name),
		slog.String("code", code))

	return nil
}
