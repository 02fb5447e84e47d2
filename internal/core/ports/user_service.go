package ports

import (
	"context"

	"github.com/taskforge/todo-api/internal/core/domain"
)

// UpdateProfileInput carries the partial profile fields of a PATCH. Nil
// pointers leave the corresponding column untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

// UserService defines profile use cases for an authenticated user.
type UserService interface {
	GetMe(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error)
}
