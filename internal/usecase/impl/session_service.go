// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	codec       service.SessionTokenCodec
	logger      *slog.Logger
	now         func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	codec service.SessionTokenCodec,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: sessionRepo,
		codec:       codec,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new session for a user and returns the raw token.
func (srv *sessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := srv.codec.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	now := srv.now()
	session := &entity.Session{
		ID:        srv.codec.Hash(token),
		UserID:    userID,
		ExpiresAt: now.Add(entity.SessionLifetime),
		CreatedAt: now,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err), slog.Any("user_id", userID))

		return "", errors.Wrap(err, "failed to create session")
	}
	srv.log(ctx).Info("Session created", slog.Any("user_id", userID))

	return token, nil
}

// Validate resolves a raw token to its session. Unknown tokens resolve to
// (nil, nil). An expired session is deleted on sight. A session with less
// than the renewal window remaining gets a fresh full lifetime.
func (srv *sessionService) Validate(ctx context.Context, token string) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByID(ctx, srv.codec.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	now := srv.now()

	if session.Expired(now) {
		// Lazy expiry: remove the dead row, then report no session.
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to remove expired session", slog.Any("error", err))
		}

		return nil, nil
	}

	if session.ExpiresWithin(now, entity.SessionRenewalAfter) {
		session.ExpiresAt = now.Add(entity.SessionLifetime)
		if err := srv.sessionRepo.UpdateExpiry(ctx, session.ID, session.ExpiresAt); err != nil {
			// The session is still valid; renewal will be retried on the next request.
			srv.log(ctx).Warn("Failed to renew session", slog.Any("error", err))
		}
	}

	return session, nil
}

// Invalidate removes the session behind a raw token. Unknown tokens are a no-op.
func (srv *sessionService) Invalidate(ctx context.Context, token string) error {
	if err := srv.sessionRepo.Delete(ctx, srv.codec.Hash(token)); err != nil {
		return errors.Wrap(err, "failed to invalidate session")
	}

	return nil
}

// GetActiveSessions lists a user's sessions, newest first.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	sessions, err := srv.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	// Filter out rows that expired but have not been lazily collected yet.
	now := srv.now()
	active := make([]*entity.Session, 0, len(sessions))
	for _, session := range sessions {
		if !session.Expired(now) {
			active = append(active, session)
		}
	}

	return active, nil
}

// RevokeSession removes one of the user's sessions by its ID.
func (srv *sessionService) RevokeSession(ctx context.Context, userID uuid.UUID, sessionID string) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "session not found")
		}

		return errors.Wrap(err, "failed to find session")
	}

	if session.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "session does not belong to user")
	}

	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}
	srv.log(ctx).Info("Session revoked", slog.Any("user_id", userID))

	return nil
}

// RevokeAllSessions removes every session the user holds.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}
	srv.log(ctx).Info("All sessions revoked", slog.Any("user_id", userID))

	return nil
}

// CleanupExpiredSessions removes expired rows and reports how many went.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := srv.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}
	if count > 0 {
		srv.log(ctx).Info("Expired sessions cleaned up", slog.Int("count", count))
	}

	return count, nil
}
