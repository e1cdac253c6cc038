package errors

// ErrorInfo contains detailed error information rendered to API clients.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g. "COURSE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description (optional)
}

// Response is the envelope the error middleware renders for failed requests.
// It mirrors the success envelope in delivery/http/response.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
