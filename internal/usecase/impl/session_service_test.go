package impl

import (
	"context"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/auth"
	mockRepo "academy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     *sessionService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestSessionService(t *testing.T, now time.Time) sessionServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	service := NewSessionService(sessionRepo, auth.NewSessionTokenCodec(), newDiscardLogger()).(*sessionService)
	service.now = func() time.Time { return now }

	return sessionServiceFixtures{
		service:     service,
		sessionRepo: sessionRepo,
	}
}

func TestSessionService_Create(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()

	var created *entity.Session
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			created = session
		}).
		Return(nil)

	token, err := fx.service.Create(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NotNil(t, created)
	assert.Equal(t, fx.service.codec.Hash(token), created.ID)
	assert.NotEqual(t, token, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, now.Add(entity.SessionLifetime), created.ExpiresAt)
}

func TestSessionService_Validate_UnknownToken(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, fx.service.codec.Hash("unknown-token")).
		Return(nil, repository.ErrSessionNotFound)

	session, err := fx.service.Validate(ctx, "unknown-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Validate_ExpiredSessionDeleted(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	id := fx.service.codec.Hash("stale-token")

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, ExpiresAt: now.Add(-time.Minute)}, nil)

	fx.sessionRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	session, err := fx.service.Validate(ctx, "stale-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Validate_RenewsInsideWindow(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	id := fx.service.codec.Hash("renewing-token")

	// 10 days remaining, below the 15-day renewal threshold.
	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, ExpiresAt: now.Add(10 * 24 * time.Hour)}, nil)

	fx.sessionRepo.EXPECT().
		UpdateExpiry(ctx, id, now.Add(entity.SessionLifetime)).
		Return(nil)

	session, err := fx.service.Validate(ctx, "renewing-token")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, now.Add(entity.SessionLifetime), session.ExpiresAt)
}

func TestSessionService_Validate_NoWriteOutsideWindow(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	id := fx.service.codec.Hash("fresh-token")
	expiresAt := now.Add(20 * 24 * time.Hour)

	// 20 days remaining; no renewal write is expected on the mock.
	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, ExpiresAt: expiresAt}, nil)

	session, err := fx.service.Validate(ctx, "fresh-token")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestSessionService_Validate_RenewalWriteFailureIsNotFatal(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	id := fx.service.codec.Hash("renewing-token")

	fx.sessionRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Session{ID: id, ExpiresAt: now.Add(24 * time.Hour)}, nil)

	fx.sessionRepo.EXPECT().
		UpdateExpiry(ctx, id, now.Add(entity.SessionLifetime)).
		Return(errors.New("database error"))

	session, err := fx.service.Validate(ctx, "renewing-token")
	require.NoError(t, err)
	assert.NotNil(t, session)
}

func TestSessionService_Invalidate(t *testing.T) {
	fx := createTestSessionService(t, time.Now())

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		Delete(ctx, fx.service.codec.Hash("some-token")).
		Return(nil)

	assert.NoError(t, fx.service.Invalidate(ctx, "some-token"))
}

func TestSessionService_GetActiveSessions_FiltersExpired(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()

	live := &entity.Session{ID: "live", UserID: userID, ExpiresAt: now.Add(time.Hour)}
	dead := &entity.Session{ID: "dead", UserID: userID, ExpiresAt: now.Add(-time.Hour)}

	fx.sessionRepo.EXPECT().
		ListByUserID(ctx, userID).
		Return([]*entity.Session{live, dead}, nil)

	sessions, err := fx.service.GetActiveSessions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "live", sessions[0].ID)
}

func TestSessionService_RevokeSession_WrongUser(t *testing.T) {
	now := time.Now()
	fx := createTestSessionService(t, now)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, "session-id").
		Return(&entity.Session{ID: "session-id", UserID: uuid.New(), ExpiresAt: now.Add(time.Hour)}, nil)

	err := fx.service.RevokeSession(ctx, userID, "session-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t, time.Now())

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrSessionNotFound)

	err := fx.service.RevokeSession(ctx, uuid.New(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	fx := createTestSessionService(t, time.Now())

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().
		DeleteByUserID(ctx, userID).
		Return(nil)

	assert.NoError(t, fx.service.RevokeAllSessions(ctx, userID))
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestSessionService(t, time.Now())

	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		DeleteExpired(ctx).
		Return(3, nil)

	count, err := fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
