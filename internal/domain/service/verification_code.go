package service

// VerificationCodeGenerator defines the interface for producing short
// verification codes sent to users over email.
type VerificationCodeGenerator interface {
	// Generate produces a new single-use verification code.
	Generate() (string, error)
}
