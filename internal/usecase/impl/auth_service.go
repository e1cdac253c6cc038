// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

// oauthStateTTL bounds how long an OAuth redirect may stay outstanding.
const oauthStateTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	sessions     usecase.SessionUsecase
	hasher       service.PasswordHasher
	codeGen      service.VerificationCodeGenerator
	tokenService service.TokenService
	mailer       service.Mailer
	oauth        service.OAuthService
	stateStore   service.OAuthStateStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	sessions usecase.SessionUsecase,
	hasher service.PasswordHasher,
	codeGen service.VerificationCodeGenerator,
	tokenService service.TokenService,
	mailer service.Mailer,
	oauth service.OAuthService,
	stateStore service.OAuthStateStore,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		sessions:     sessions,
		hasher:       hasher,
		codeGen:      codeGen,
		tokenService: tokenService,
		mailer:       mailer,
		oauth:        oauth,
		stateStore:   stateStore,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an unverified account and emails a verification code.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Signing up user", slog.String("email", input.Email))

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var user *entity.User
	var verification *entity.EmailVerification

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		connRepo := repoFactory.ConnectionRepo()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil && existing.IsVerified():
			// A verified account owns this address for good.
			if _, connErr := connRepo.FindByUserAndProvider(ctx, existing.ID, entity.ProviderTypeEmail); connErr != nil {
				if errors.Is(connErr, repository.ErrConnectionNotFound) {
					return domainerrors.ErrUseOAuthInstead
				}

				return errors.Wrap(connErr, "failed to inspect credentials")
			}

			return domainerrors.ErrEmailTaken

		case err == nil:
			// Unverified accounts are placeholders; signing up again takes them over.
			user = existing
			user.Name = input.Name
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update pending user")
			}

			conn, connErr := connRepo.FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail)
			switch {
			case connErr == nil:
				conn.PasswordHash = passwordHash
				if err := connRepo.Update(ctx, conn); err != nil {
					return errors.Wrap(err, "failed to update credential")
				}
			case errors.Is(connErr, repository.ErrConnectionNotFound):
				if err := srv.createEmailConnection(ctx, connRepo, user, passwordHash); err != nil {
					return err
				}
			default:
				return errors.Wrap(connErr, "failed to inspect credentials")
			}

		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{
				Email:         input.Email,
				Name:          input.Name,
				Role:          entity.RoleStudent,
				EmailVerified: false,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			if err := srv.createEmailConnection(ctx, connRepo, user, passwordHash); err != nil {
				return err
			}

		default:
			return errors.Wrap(err, "failed to look up user")
		}

		verification, err = srv.issueVerification(ctx, repoFactory.VerificationRepo(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Signup failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	// Mail delivery happens outside the transaction so a slow provider can't
	// hold row locks open.
	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Name, verification.Code); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.Any("error", err), slog.String("email", user.Email))

		return nil, errors.Wrap(err, "failed to send verification code")
	}

	token, err := srv.tokenService.IssueVerificationToken(verification.ID, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification token")
	}
	srv.log(ctx).Info("Signup pending verification", slog.Any("user_id", user.ID))

	return &usecase.SignupOutput{User: user, VerificationToken: token}, nil
}

// VerifyEmail consumes a one-time code, marks the account verified and opens a session.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) (*usecase.LoginOutput, error) {
	if err := validateCodeFormat(input.Code); err != nil {
		return nil, err
	}

	claims, err := srv.tokenService.ParseVerificationToken(input.VerificationToken)
	if err != nil {
		return nil, domainerrors.ErrVerificationNotFound.WrapMessage("invalid verification token")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		verificationRepo := repoFactory.VerificationRepo()
		userRepo := repoFactory.UserRepo()

		verification, err := verificationRepo.FindByIDAndUser(ctx, claims.VerificationID, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationNotFound) {
				return domainerrors.ErrVerificationNotFound
			}

			return errors.Wrap(err, "failed to find verification")
		}

		if verification.Expired(srv.now()) {
			// An expired code is gone for good; the user must request a new one.
			if err := verificationRepo.Delete(ctx, verification.ID); err != nil {
				return errors.Wrap(err, "failed to discard expired verification")
			}

			return domainerrors.ErrVerificationExpired
		}

		if subtle.ConstantTimeCompare([]byte(verification.Code), []byte(strings.ToUpper(input.Code))) != 1 {
			return domainerrors.ErrVerificationMismatch
		}

		// Single use: the code dies with this transaction either way.
		if err := verificationRepo.Delete(ctx, verification.ID); err != nil {
			return errors.Wrap(err, "failed to consume verification")
		}

		user, err = userRepo.FindByID(ctx, verification.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		user.EmailVerified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err), slog.Any("user_id", claims.UserID))

		return nil, err
	}

	sessionToken, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Email verified", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{SessionToken: sessionToken, User: user}, nil
}

// ResendCode issues a fresh code for the pending verification.
func (srv *authService) ResendCode(ctx context.Context, verificationToken string) (*usecase.SignupOutput, error) {
	claims, err := srv.tokenService.ParseVerificationToken(verificationToken)
	if err != nil {
		return nil, domainerrors.ErrVerificationNotFound.WrapMessage("invalid verification token")
	}

	var user *entity.User
	var verification *entity.EmailVerification

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err = repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrVerificationNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.IsVerified() {
			return domainerrors.ErrConflict.WrapMessage("account already verified")
		}

		verification, err = srv.issueVerification(ctx, repoFactory.VerificationRepo(), user)

		return err
	})
	if err != nil {
		return nil, err
	}

	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Name, verification.Code); err != nil {
		return nil, errors.Wrap(err, "failed to send verification code")
	}

	token, err := srv.tokenService.IssueVerificationToken(verification.ID, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification token")
	}
	srv.log(ctx).Info("Verification code resent", slog.Any("user_id", user.ID))

	return &usecase.SignupOutput{User: user, VerificationToken: token}, nil
}

// Login checks email/password credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User
	var verification *entity.EmailVerification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		connRepo := repoFactory.ConnectionRepo()

		var err error
		user, err = userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to look up user")
		}

		conn, err := connRepo.FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				// The account exists but only through OAuth.
				return domainerrors.ErrUseOAuthInstead
			}

			return errors.Wrap(err, "failed to look up credential")
		}

		if !srv.hasher.Check(input.Password, conn.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		if !user.IsVerified() {
			// Correct password, unproven mailbox. Challenge again instead of
			// opening a session.
			verification, err = srv.issueVerification(ctx, repoFactory.VerificationRepo(), user)

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	if verification != nil {
		if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Name, verification.Code); err != nil {
			return nil, errors.Wrap(err, "failed to send verification code")
		}

		token, err := srv.tokenService.IssueVerificationToken(verification.ID, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue verification token")
		}
		srv.log(ctx).Info("Login pending verification", slog.Any("user_id", user.ID))

		return &usecase.LoginOutput{VerificationToken: token, User: user}, nil
	}

	sessionToken, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{SessionToken: sessionToken, User: user}, nil
}

// Logout invalidates the session behind the given raw token.
func (srv *authService) Logout(ctx context.Context, sessionToken string) error {
	return srv.sessions.Invalidate(ctx, sessionToken)
}

// BeginGoogleLogin starts the OAuth authorization-code flow with PKCE.
func (srv *authService) BeginGoogleLogin(ctx context.Context) (*usecase.GoogleLoginOutput, error) {
	state, err := randomURLToken(32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}

	verifier, err := randomURLToken(32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code verifier")
	}

	if err := srv.stateStore.Save(ctx, state, verifier, oauthStateTTL); err != nil {
		return nil, errors.Wrap(err, "failed to save oauth state")
	}

	challenge := sha256.Sum256([]byte(verifier))
	authURL := srv.oauth.AuthCodeURL(state, base64.RawURLEncoding.EncodeToString(challenge[:]))

	return &usecase.GoogleLoginOutput{AuthURL: authURL}, nil
}

// CompleteGoogleLogin finishes the OAuth flow and opens a session.
func (srv *authService) CompleteGoogleLogin(ctx context.Context, input usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	verifier, err := srv.stateStore.Take(ctx, input.State)
	if err != nil {
		srv.log(ctx).Warn("OAuth state rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	oauthUser, err := srv.oauth.Exchange(ctx, input.Code, verifier)
	if err != nil {
		srv.log(ctx).Error("OAuth exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(err.Error())
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		connRepo := repoFactory.ConnectionRepo()

		conn, err := connRepo.Find(ctx, srv.oauth.Provider(), oauthUser.ID)
		switch {
		case err == nil:
			user, err = userRepo.FindByID(ctx, conn.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to find linked user")
			}

		case errors.Is(err, repository.ErrConnectionNotFound):
			// First sign-in with this Google account: upsert by email.
			user, err = userRepo.FindByEmail(ctx, oauthUser.Email)
			switch {
			case err == nil:
				// Existing account; link the provider to it.
			case errors.Is(err, repository.ErrUserNotFound):
				user = &entity.User{
					Email:         oauthUser.Email,
					Name:          oauthUser.Name,
					Role:          entity.RoleStudent,
					EmailVerified: oauthUser.EmailVerified,
				}
				if err := userRepo.Create(ctx, user); err != nil {
					return errors.Wrap(err, "failed to create user")
				}
			default:
				return errors.Wrap(err, "failed to look up user by email")
			}

			link := &entity.Connection{
				UserID:         user.ID,
				Provider:       srv.oauth.Provider(),
				ProviderUserID: oauthUser.ID,
			}
			if err := connRepo.Create(ctx, link); err != nil {
				return errors.Wrap(err, "failed to link oauth credential")
			}

		default:
			return errors.Wrap(err, "failed to look up oauth credential")
		}

		// The provider has vouched for the mailbox; that settles verification.
		if oauthUser.EmailVerified && !user.EmailVerified {
			user.EmailVerified = true
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to mark user verified")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("OAuth login failed", slog.Any("error", err))

		return nil, err
	}

	sessionToken, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User logged in via OAuth", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{SessionToken: sessionToken, User: user}, nil
}

// --- Helpers ---

func (srv *authService) createEmailConnection(ctx context.Context, connRepo repository.ConnectionRepository, user *entity.User, passwordHash string) error {
	conn := &entity.Connection{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   passwordHash,
	}
	if err := connRepo.Create(ctx, conn); err != nil {
		return errors.Wrap(err, "failed to create credential")
	}

	return nil
}

// issueVerification replaces any outstanding code for the user with a new one.
func (srv *authService) issueVerification(ctx context.Context, verificationRepo repository.VerificationRepository, user *entity.User) (*entity.EmailVerification, error) {
	if err := verificationRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to discard outstanding verifications")
	}

	code, err := srv.codeGen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	verification := &entity.EmailVerification{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: srv.now().Add(entity.VerificationTTL),
	}
	if err := verificationRepo.Create(ctx, verification); err != nil {
		return nil, errors.Wrap(err, "failed to create verification")
	}

	return verification, nil
}

// validateCodeFormat rejects malformed codes before any storage lookup.
func validateCodeFormat(code string) error {
	if len(code) != entity.VerificationCodeLength {
		return domainerrors.ErrVerificationFormat
	}
	for _, r := range strings.ToUpper(code) {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isUpper && !isDigit {
			return domainerrors.ErrVerificationFormat
		}
	}

	return nil
}

// randomURLToken returns a URL-safe random string from n bytes of entropy.
func randomURLToken(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
