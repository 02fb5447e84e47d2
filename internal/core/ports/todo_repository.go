package ports

import (
	"context"

	"github.com/taskforge/todo-api/internal/core/domain"
)

// TodoRepository defines persistence operations for todo items.
type TodoRepository interface {
	// Create inserts the todo and fills in the store-assigned ID.
	Create(ctx context.Context, todo *domain.Todo) error
	// ListByUser returns all todos owned by userID in creation order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error)
	// FindByID looks up a todo by id alone, regardless of owner.
	// Returns domain.ErrTodoNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	// FindByUserAndID looks up a todo scoped to its owner. A todo owned by a
	// different user is indistinguishable from a missing one: both return
	// domain.ErrTodoNotFound.
	FindByUserAndID(ctx context.Context, userID, id int64) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id int64) error
}
