// Package middleware contains HTTP middleware for the API server.
package middleware

import (
	"net/http"
	"time"

	"academy/internal/domain/constants"
	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextKeyUserID       = "userID"
	ContextKeyUserRole     = "userRole"
	ContextKeySessionToken = "sessionToken"
)

// AuthMiddleware resolves the session cookie into an authenticated user.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	userRepo  repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, userRepo: userRepo}
}

// Authenticate validates the session cookie and rejects the request when no
// valid session backs it. A cookie pointing at a dead session is cleared so
// the client stops sending it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, token, err := m.resolve(c)
		if err != nil {
			return err
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUserRole, user.Role.String())
		c.Set(ContextKeySessionToken, token)

		return next(c)
	}
}

// OptionalAuthenticate resolves the session when present but lets anonymous
// requests through. Handlers see a zero user ID for anonymous callers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, token, err := m.resolve(c)
		if err != nil {
			return err
		}
		if user != nil {
			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUserRole, user.Role.String())
			c.Set(ContextKeySessionToken, token)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyUserRole).(string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}
			if role != requiredRole.String() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// resolve turns the session cookie into a user. It returns (nil, "", nil) for
// anonymous requests, including cookies whose session is gone or whose user
// never finished email verification.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.User, string, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, "", nil
	}

	ctx := c.Request().Context()

	session, err := m.sessionUC.Validate(ctx, cookie.Value)
	if err != nil {
		return nil, "", err
	}
	if session == nil {
		// Dead session; make the client drop the cookie.
		ClearSessionCookie(c)

		return nil, "", nil
	}

	user, err := m.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The owning user is gone; the session goes with it.
			if err := m.sessionUC.Invalidate(ctx, cookie.Value); err != nil {
				return nil, "", err
			}
			ClearSessionCookie(c)

			return nil, "", nil
		}

		return nil, "", err
	}
	if !user.IsVerified() {
		// A session should never outlive a verified state rollback.
		if err := m.sessionUC.Invalidate(ctx, cookie.Value); err != nil {
			return nil, "", err
		}
		ClearSessionCookie(c)

		return nil, "", nil
	}

	return user, cookie.Value, nil
}

// SetSessionCookie writes the session cookie with the full session lifetime.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(entity.SessionLifetime),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetVerificationCookie writes the short-lived email verification cookie.
func SetVerificationCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.VerificationCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(entity.VerificationTTL),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearVerificationCookie expires the verification cookie on the client.
func ClearVerificationCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.VerificationCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
