package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It signs the short-lived cookie that ties a browser to a pending email verification.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Verification == "" {
		return nil, errors.New("verification secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Verification,
		ttl:    entity.VerificationTTL,
	}, nil
}

// IssueVerificationToken creates a signed token carrying only the pending
// verification's identity. The code itself never enters the cookie.
func (s *jwtService) IssueVerificationToken(verificationID, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"vid": verificationID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ParseVerificationToken checks the validity of a token string.
func (s *jwtService) ParseVerificationToken(tokenString string) (*service.VerificationClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := claimUUID(mapClaims, "sub")
	if err != nil {
		return nil, err
	}
	verificationID, err := claimUUID(mapClaims, "vid")
	if err != nil {
		return nil, err
	}

	return &service.VerificationClaims{
		VerificationID: verificationID,
		UserID:         userID,
	}, nil
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	return id, nil
}
