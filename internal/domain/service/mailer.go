package service

import "context"

// Mailer defines the interface for sending transactional email.
type Mailer interface {
	// SendVerificationCode delivers a verification code to the given address.
	SendVerificationCode(ctx context.Context, to, name, code string) error
}
