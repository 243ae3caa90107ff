package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mdnotes/notes-api/internal/core/domain"
	"github.com/mdnotes/notes-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// AuthService links third-party identity assertions to local accounts and
// issues signed access tokens. It never re-verifies the assertion; the
// caller is trusted to have done that against the provider.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
		newID:     newID,
	}
}

// Link resolves the assertion to exactly one user, first match wins:
// by external id, then by email (attaching the external id), else a new
// account is created. Repeat calls with the same external id always resolve
// to the same user.
func (s *AuthService) Link(ctx context.Context, assertion ports.IdentityAssertion) (*ports.AuthResult, error) {
	user, err := s.resolve(ctx, assertion)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) resolve(ctx context.Context, assertion ports.IdentityAssertion) (*domain.User, error) {
	user, err := s.users.FindByExternalID(ctx, assertion.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.users.FindByEmail(ctx, assertion.Email)
	if err == nil {
		if err := s.users.AttachExternalID(ctx, user.ID, assertion.ExternalID); err != nil {
			return nil, err
		}
		user.ExternalID = assertion.ExternalID
		s.logger.Info().Str("user_id", user.ID).Msg("external identity linked to existing account")
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	user = &domain.User{
		ID:         s.newID(),
		Name:       assertion.Name,
		Email:      assertion.Email,
		ExternalID: assertion.ExternalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": s.now().Unix(),
		"exp": s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
