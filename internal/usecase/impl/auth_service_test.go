package impl

import (
	"context"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"
	mockService "academy/internal/mocks/service"
	mockUsecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          *authService
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	connRepo         *mockRepo.MockConnectionRepository
	verificationRepo *mockRepo.MockVerificationRepository
	sessions         *mockUsecase.MockSessionUsecase
	hasher           *mockService.MockPasswordHasher
	codeGen          *mockService.MockVerificationCodeGenerator
	tokenService     *mockService.MockTokenService
	mailer           *mockService.MockMailer
	oauth            *mockService.MockOAuthService
	stateStore       *mockService.MockOAuthStateStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	connRepo := mockRepo.NewMockConnectionRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	hasher := mockService.NewMockPasswordHasher(t)
	codeGen := mockService.NewMockVerificationCodeGenerator(t)
	tokenService := mockService.NewMockTokenService(t)
	mailer := mockService.NewMockMailer(t)
	oauth := mockService.NewMockOAuthService(t)
	stateStore := mockService.NewMockOAuthStateStore(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().ConnectionRepo().Return(connRepo).Maybe()
	factory.EXPECT().VerificationRepo().Return(verificationRepo).Maybe()
	passthroughTx(txManager, factory)

	service := NewAuthService(
		txManager, sessions, hasher, codeGen, tokenService,
		mailer, oauth, stateStore, newDiscardLogger(),
	).(*authService)

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		factory:          factory,
		userRepo:         userRepo,
		connRepo:         connRepo,
		verificationRepo: verificationRepo,
		sessions:         sessions,
		hasher:           hasher,
		codeGen:          codeGen,
		tokenService:     tokenService,
		mailer:           mailer,
		oauth:            oauth,
		stateStore:       stateStore,
	}
}

// expectIssueVerification wires the delete-then-create cycle behind a new code.
func (fx *authServiceFixtures) expectIssueVerification(ctx context.Context, code string) {
	fx.codeGen.EXPECT().Generate().Return(code, nil)
	fx.verificationRepo.EXPECT().
		DeleteByUserID(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)
	fx.verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailVerification")).
		Return(nil)
}

func TestAuthService_Signup_NewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Str0ng!pass"}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	var createdUser *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			createdUser = user
		}).
		Return(nil)

	var createdConn *entity.Connection
	fx.connRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Connection")).
		Run(func(_ context.Context, conn *entity.Connection) {
			createdConn = conn
		}).
		Return(nil)

	fx.expectIssueVerification(ctx, "ABC234")

	fx.mailer.EXPECT().
		SendVerificationCode(ctx, input.Email, input.Name, "ABC234").
		Return(nil)

	fx.tokenService.EXPECT().
		IssueVerificationToken(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("uuid.UUID")).
		Return("verification-jwt", nil)

	output, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "verification-jwt", output.VerificationToken)

	require.NotNil(t, createdUser)
	assert.Equal(t, entity.RoleStudent, createdUser.Role)
	assert.False(t, createdUser.EmailVerified)

	require.NotNil(t, createdConn)
	assert.Equal(t, entity.ProviderTypeEmail, createdConn.Provider)
	assert.Equal(t, input.Email, createdConn.ProviderUserID)
	assert.Equal(t, "hashed", createdConn.PasswordHash)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Str0ng!pass"}
	existing := &entity.User{ID: uuid.New(), Email: input.Email, EmailVerified: true}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, existing.ID, entity.ProviderTypeEmail).
		Return(&entity.Connection{}, nil)

	_, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Signup_OAuthOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Str0ng!pass"}
	existing := &entity.User{ID: uuid.New(), Email: input.Email, EmailVerified: true}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	// Verified account, but no email credential; only the Google link exists.
	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, existing.ID, entity.ProviderTypeEmail).
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUseOAuthInstead)
}

func TestAuthService_Signup_TakesOverUnverifiedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.SignupInput{Name: "New Name", Email: "ada@example.com", Password: "Str0ng!pass"}
	existing := &entity.User{ID: uuid.New(), Email: input.Email, Name: "Old Name", EmailVerified: false}
	conn := &entity.Connection{ID: uuid.New(), UserID: existing.ID, Provider: entity.ProviderTypeEmail, PasswordHash: "old-hash"}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new-hash", nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existing, nil)

	fx.userRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, existing.ID, entity.ProviderTypeEmail).
		Return(conn, nil)

	fx.connRepo.EXPECT().
		Update(ctx, conn).
		Return(nil)

	fx.expectIssueVerification(ctx, "XYZ567")
	fx.mailer.EXPECT().
		SendVerificationCode(ctx, input.Email, input.Name, "XYZ567").
		Return(nil)
	fx.tokenService.EXPECT().
		IssueVerificationToken(mock.AnythingOfType("uuid.UUID"), existing.ID).
		Return("verification-jwt", nil)

	output, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "New Name", output.User.Name)
	assert.Equal(t, "new-hash", conn.PasswordHash)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		ValidateStrength("weak").
		Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "a@b.c", Password: "weak"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	verificationID := uuid.New()
	user := &entity.User{ID: userID, EmailVerified: false}

	fx.tokenService.EXPECT().
		ParseVerificationToken("verification-jwt").
		Return(&service.VerificationClaims{VerificationID: verificationID, UserID: userID}, nil)

	fx.verificationRepo.EXPECT().
		FindByIDAndUser(ctx, verificationID, userID).
		Return(&entity.EmailVerification{
			ID:        verificationID,
			UserID:    userID,
			Code:      "ABC234",
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

	fx.verificationRepo.EXPECT().
		Delete(ctx, verificationID).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	fx.sessions.EXPECT().
		Create(ctx, userID).
		Return("session-token", nil)

	// Codes are case-insensitive on input.
	output, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		VerificationToken: "verification-jwt",
		Code:              "abc234",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyEmail_BadFormat(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	cases := []struct {
		name string
		code string
	}{
		{"too short", "ABC23"},
		{"too long", "ABC2345"},
		{"bad characters", "AB!@#$"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Code: tc.code})
			assert.ErrorIs(t, err, domainerrors.ErrVerificationFormat)
		})
	}
}

func TestAuthService_VerifyEmail_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseVerificationToken("garbage").
		Return(nil, assert.AnError)

	_, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{VerificationToken: "garbage", Code: "ABC234"})
	assert.ErrorIs(t, err, domainerrors.ErrVerificationNotFound)
}

func TestAuthService_VerifyEmail_Expired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	verificationID := uuid.New()

	fx.tokenService.EXPECT().
		ParseVerificationToken("verification-jwt").
		Return(&service.VerificationClaims{VerificationID: verificationID, UserID: userID}, nil)

	fx.verificationRepo.EXPECT().
		FindByIDAndUser(ctx, verificationID, userID).
		Return(&entity.EmailVerification{
			ID:        verificationID,
			UserID:    userID,
			Code:      "ABC234",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	// Expired codes are discarded, not retried.
	fx.verificationRepo.EXPECT().
		Delete(ctx, verificationID).
		Return(nil)

	_, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		VerificationToken: "verification-jwt",
		Code:              "ABC234",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVerificationExpired)
}

func TestAuthService_VerifyEmail_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	verificationID := uuid.New()

	fx.tokenService.EXPECT().
		ParseVerificationToken("verification-jwt").
		Return(&service.VerificationClaims{VerificationID: verificationID, UserID: userID}, nil)

	fx.verificationRepo.EXPECT().
		FindByIDAndUser(ctx, verificationID, userID).
		Return(&entity.EmailVerification{
			ID:        verificationID,
			UserID:    userID,
			Code:      "ABC234",
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

	_, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		VerificationToken: "verification-jwt",
		Code:              "ABC235",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVerificationMismatch)
}

func TestAuthService_ResendCode_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ParseVerificationToken("verification-jwt").
		Return(&service.VerificationClaims{VerificationID: uuid.New(), UserID: userID}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, EmailVerified: true}, nil)

	_, err := fx.service.ResendCode(ctx, "verification-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAuthService_ResendCode_ReplacesOutstandingCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com", Name: "Ada", EmailVerified: false}

	fx.tokenService.EXPECT().
		ParseVerificationToken("old-jwt").
		Return(&service.VerificationClaims{VerificationID: uuid.New(), UserID: userID}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	fx.expectIssueVerification(ctx, "FRESH2")
	fx.mailer.EXPECT().
		SendVerificationCode(ctx, user.Email, user.Name, "FRESH2").
		Return(nil)
	fx.tokenService.EXPECT().
		IssueVerificationToken(mock.AnythingOfType("uuid.UUID"), userID).
		Return("new-jwt", nil)

	output, err := fx.service.ResendCode(ctx, "old-jwt")
	require.NoError(t, err)
	assert.Equal(t, "new-jwt", output.VerificationToken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", EmailVerified: true}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Connection{PasswordHash: "hash"}, nil)

	fx.hasher.EXPECT().Check("Str0ng!pass", "hash").Return(true)

	fx.sessions.EXPECT().
		Create(ctx, user.ID).
		Return("session-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Empty(t, output.VerificationToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", EmailVerified: true}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Connection{PasswordHash: "hash"}, nil)

	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", EmailVerified: true}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUseOAuthInstead)
}

func TestAuthService_Login_UnverifiedGetsChallenge(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada", EmailVerified: false}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.connRepo.EXPECT().
		FindByUserAndProvider(ctx, user.ID, entity.ProviderTypeEmail).
		Return(&entity.Connection{PasswordHash: "hash"}, nil)

	fx.hasher.EXPECT().Check("Str0ng!pass", "hash").Return(true)

	// Correct password on an unverified account re-issues a code instead of
	// opening a session.
	fx.expectIssueVerification(ctx, "AGAIN2")
	fx.mailer.EXPECT().
		SendVerificationCode(ctx, user.Email, user.Name, "AGAIN2").
		Return(nil)
	fx.tokenService.EXPECT().
		IssueVerificationToken(mock.AnythingOfType("uuid.UUID"), user.ID).
		Return("verification-jwt", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Empty(t, output.SessionToken)
	assert.Equal(t, "verification-jwt", output.VerificationToken)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessions.EXPECT().
		Invalidate(ctx, "session-token").
		Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, "session-token"))
}

func TestAuthService_BeginGoogleLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	var state, verifier string
	fx.stateStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), oauthStateTTL).
		Run(func(_ context.Context, s, v string, _ time.Duration) {
			state = s
			verifier = v
		}).
		Return(nil)

	fx.oauth.EXPECT().
		AuthCodeURL(mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("https://accounts.google.com/o/oauth2/auth?state=x")

	output, err := fx.service.BeginGoogleLogin(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, output.AuthURL)
	assert.NotEmpty(t, state)
	assert.NotEmpty(t, verifier)
	assert.NotEqual(t, state, verifier)
}

func TestAuthService_CompleteGoogleLogin_NewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ID:            "google-sub-1",
		Email:         "ada@example.com",
		Name:          "Ada",
		EmailVerified: true,
	}

	fx.stateStore.EXPECT().
		Take(ctx, "state-1").
		Return("verifier-1", nil)

	fx.oauth.EXPECT().
		Exchange(ctx, "code-1", "verifier-1").
		Return(oauthUser, nil)

	fx.oauth.EXPECT().Provider().Return(entity.ProviderTypeGoogle)

	fx.connRepo.EXPECT().
		Find(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrConnectionNotFound)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, oauthUser.Email).
		Return(nil, repository.ErrUserNotFound)

	var createdUser *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			createdUser = user
		}).
		Return(nil)

	fx.connRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Connection")).
		Return(nil)

	fx.sessions.EXPECT().
		Create(ctx, mock.AnythingOfType("uuid.UUID")).
		Return("session-token", nil)

	output, err := fx.service.CompleteGoogleLogin(ctx, usecase.GoogleCallbackInput{State: "state-1", Code: "code-1"})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)

	require.NotNil(t, createdUser)
	assert.True(t, createdUser.EmailVerified)
	assert.Equal(t, entity.RoleStudent, createdUser.Role)
}

func TestAuthService_CompleteGoogleLogin_LinksExistingAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", EmailVerified: false}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: user.Email, EmailVerified: true}

	fx.stateStore.EXPECT().
		Take(ctx, "state-1").
		Return("verifier-1", nil)

	fx.oauth.EXPECT().
		Exchange(ctx, "code-1", "verifier-1").
		Return(oauthUser, nil)

	fx.oauth.EXPECT().Provider().Return(entity.ProviderTypeGoogle)

	fx.connRepo.EXPECT().
		Find(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrConnectionNotFound)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	var link *entity.Connection
	fx.connRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Connection")).
		Run(func(_ context.Context, conn *entity.Connection) {
			link = conn
		}).
		Return(nil)

	// The provider vouched for the mailbox, so verification settles here.
	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	fx.sessions.EXPECT().
		Create(ctx, user.ID).
		Return("session-token", nil)

	output, err := fx.service.CompleteGoogleLogin(ctx, usecase.GoogleCallbackInput{State: "state-1", Code: "code-1"})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.True(t, user.EmailVerified)

	require.NotNil(t, link)
	assert.Equal(t, user.ID, link.UserID)
	assert.Equal(t, "google-sub-1", link.ProviderUserID)
}

func TestAuthService_CompleteGoogleLogin_BadState(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// Single use: a consumed or unknown state never exchanges.
	fx.stateStore.EXPECT().
		Take(ctx, "replayed-state").
		Return("", assert.AnError)

	_, err := fx.service.CompleteGoogleLogin(ctx, usecase.GoogleCallbackInput{State: "replayed-state", Code: "code-1"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestAuthService_CompleteGoogleLogin_ExchangeFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.stateStore.EXPECT().
		Take(ctx, "state-1").
		Return("verifier-1", nil)

	fx.oauth.EXPECT().
		Exchange(ctx, "bad-code", "verifier-1").
		Return(nil, assert.AnError)

	_, err := fx.service.CompleteGoogleLogin(ctx, usecase.GoogleCallbackInput{State: "state-1", Code: "bad-code"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}
