package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/core/domain"
	"github.com/taskforge/todo-api/internal/core/ports"
	"github.com/taskforge/todo-api/internal/pkg/password"
)

// AuthService implements signup and login.
type AuthService struct {
	users     ports.UserRepository
	hasher    *password.Hasher
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *password.Hasher, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 10 * time.Minute
	}
	return &AuthService{users: users, hasher: hasher, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Signup creates an account and returns a token bound to it. An email already
// present in the store surfaces as domain.ErrDuplicateCredentials.
func (s *AuthService) Signup(ctx context.Context, email, pw string) (*ports.TokenResult, error) {
	hash, err := s.hasher.Hash(pw)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user signed up")
	return s.signToken(user.ID, user.Email)
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password are logged with their distinct reasons but both surface as
// domain.ErrInvalidCredentials variants mapped identically at the boundary.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*ports.TokenResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("email", email).Msg("login rejected: email not valid")
			return nil, domain.ErrEmailNotValid
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(user.PasswordHash, pw)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info().Int64("user_id", user.ID).Msg("login rejected: password not valid")
		return nil, domain.ErrPasswordNotValid
	}

	return s.signToken(user.ID, user.Email)
}

func (s *AuthService) signToken(userID int64, email string) (*ports.TokenResult, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &ports.TokenResult{AccessToken: signed}, nil
}
