// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/domain/constants"
	"academy/internal/domain/entity"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, sessionUC usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC, sessionUC: sessionUC}
}

type signupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required,max=20"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetVerificationCookie(c, output.VerificationToken)

	return response.Success(c, http.StatusCreated, userView(output.User), "Verification code sent")
}

type verifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}

// VerifyEmail consumes the one-time code and opens a session.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var input verifyEmailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cookie, err := c.Cookie(constants.VerificationCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "VERIFICATION_MISSING", "No pending verification")
	}

	output, err := h.authUC.VerifyEmail(c.Request().Context(), usecase.VerifyEmailInput{
		VerificationToken: cookie.Value,
		Code:              input.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.ClearVerificationCookie(c)
	middleware.SetSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, userView(output.User), "Email verified")
}

// ResendCode issues a fresh code for the pending verification.
func (h *AuthHandler) ResendCode(c echo.Context) error {
	cookie, err := c.Cookie(constants.VerificationCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "VERIFICATION_MISSING", "No pending verification")
	}

	output, err := h.authUC.ResendCode(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetVerificationCookie(c, output.VerificationToken)

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the email/password login request. An unverified account gets
// a fresh verification challenge instead of a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.SessionToken == "" {
		middleware.SetVerificationCookie(c, output.VerificationToken)

		return response.Success(c, http.StatusOK, map[string]any{
			"verification_required": true,
		}, "Verification code sent")
	}

	middleware.SetSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, userView(output.User), "Login successful")
}

// Logout invalidates the current session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.authUC.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	middleware.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// GoogleLogin initiates the Google Sign-In flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.authUC.BeginGoogleLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": output.AuthURL,
	}, "Google OAuth URL generated")
}

// GoogleCallback completes the Google Sign-In flow.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing state or code")
	}

	output, err := h.authUC.CompleteGoogleLogin(c.Request().Context(), usecase.GoogleCallbackInput{
		State: state,
		Code:  code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.SetSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, userView(output.User), "Login successful")
}

// ListSessions lists the caller's active sessions.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	sessions, err := h.sessionUC.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, map[string]any{
			"id":         s.ID,
			"created_at": s.CreatedAt,
			"expires_at": s.ExpiresAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "Sessions retrieved")
}

// RevokeSession removes one of the caller's sessions.
func (h *AuthHandler) RevokeSession(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	sessionID := c.Param("sessionID")
	if err := h.sessionUC.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked")
}

// RevokeAllSessions removes every session the caller holds, including the
// current one.
func (h *AuthHandler) RevokeAllSessions(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Authentication required")
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	middleware.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "All sessions revoked")
}

// userView strips a user entity down to its public fields.
func userView(user *entity.User) map[string]any {
	if user == nil {
		return nil
	}

	return map[string]any{
		"id":             user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"role":           user.Role,
		"email_verified": user.EmailVerified,
	}
}
