package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"academy/internal/domain/constants"
	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	mockUsecase "academy/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	sessionUC  *mockUsecase.MockSessionUsecase
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(sessionUC, userRepo),
		sessionUC:  sessionUC,
		userRepo:   userRepo,
	}
}

// doAuthenticated runs a request with an optional session cookie through the
// Authenticate middleware and reports whether the next handler ran.
func doAuthenticated(t *testing.T, fx authMiddlewareFixtures, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextRan := false
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		nextRan = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, nextRan
}

// clearsSessionCookie reports whether the response expires the session cookie.
func clearsSessionCookie(rec *httptest.ResponseRecorder) bool {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName && cookie.MaxAge < 0 {
			return true
		}
	}

	return false
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	session := &entity.Session{ID: "digest", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	user := &entity.User{ID: userID, Role: entity.RoleStudent, EmailVerified: true}

	fx.sessionUC.EXPECT().
		Validate(mock.Anything, "raw-token").
		Return(session, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(user, nil)

	rec, nextRan := doAuthenticated(t, fx, "raw-token")
	assert.True(t, nextRan)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_NoCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, nextRan := doAuthenticated(t, fx, "")
	assert.False(t, nextRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeadSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.sessionUC.EXPECT().
		Validate(mock.Anything, "stale-token").
		Return(nil, nil)

	rec, nextRan := doAuthenticated(t, fx, "stale-token")
	assert.False(t, nextRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, clearsSessionCookie(rec))
}

func TestAuthMiddleware_Authenticate_UnverifiedOwner(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	session := &entity.Session{ID: "digest", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	user := &entity.User{ID: userID, Role: entity.RoleStudent}

	fx.sessionUC.EXPECT().
		Validate(mock.Anything, "raw-token").
		Return(session, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(user, nil)
	fx.sessionUC.EXPECT().
		Invalidate(mock.Anything, "raw-token").
		Return(nil)

	rec, nextRan := doAuthenticated(t, fx, "raw-token")
	assert.False(t, nextRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, clearsSessionCookie(rec))
}

func TestAuthMiddleware_Authenticate_UserGone(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	session := &entity.Session{ID: "digest", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}

	fx.sessionUC.EXPECT().
		Validate(mock.Anything, "raw-token").
		Return(session, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)
	fx.sessionUC.EXPECT().
		Invalidate(mock.Anything, "raw-token").
		Return(nil)

	rec, nextRan := doAuthenticated(t, fx, "raw-token")
	assert.False(t, nextRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, clearsSessionCookie(rec))
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := fx.middleware.OptionalAuthenticate(func(c echo.Context) error {
		_, ok := c.Get(ContextKeyUserID).(uuid.UUID)
		assert.False(t, ok)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserRole, entity.RoleStudent.String())

	handler := fx.middleware.RequireRole(entity.RoleInstructor)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "instructor"))
}
