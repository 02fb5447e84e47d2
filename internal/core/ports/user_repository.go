package ports

import (
	"context"

	"github.com/taskforge/todo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and fills in the store-assigned ID. A unique
	// constraint violation on email maps to domain.ErrDuplicateCredentials.
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail returns domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update persists the mutable profile fields (first/last name).
	Update(ctx context.Context, user *domain.User) error
}
