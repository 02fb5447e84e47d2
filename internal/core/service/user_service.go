package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/core/domain"
	"github.com/taskforge/todo-api/internal/core/ports"
)

// UserService implements profile reads and partial updates.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetMe(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile merges the non-nil fields of input into the user row.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", userID).Msg("profile updated")
	return user, nil
}
