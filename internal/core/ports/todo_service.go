package ports

import (
	"context"

	"github.com/taskforge/todo-api/internal/core/domain"
)

// CreateTodoInput carries the fields accepted when creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
	Link        string
}

// EditTodoInput carries the partial fields of an edit. Nil pointers leave the
// corresponding field untouched.
type EditTodoInput struct {
	Title       *string
	Description *string
	Link        *string
	Completed   *bool
}

// TodoService defines todo use cases. Every operation is scoped to the
// authenticated user id supplied by the transport layer.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, input CreateTodoInput) (*domain.Todo, error)
	GetTodos(ctx context.Context, userID int64) ([]*domain.Todo, error)
	// GetTodoByID returns (nil, nil) when the todo is missing or owned by
	// someone else; it never reports Forbidden.
	GetTodoByID(ctx context.Context, userID, todoID int64) (*domain.Todo, error)
	// EditTodoByID returns domain.ErrAccessForbidden when the todo is missing
	// or owned by someone else.
	EditTodoByID(ctx context.Context, userID, todoID int64, input EditTodoInput) (*domain.Todo, error)
	// DeleteTodoByID applies the same ownership policy as EditTodoByID.
	DeleteTodoByID(ctx context.Context, userID, todoID int64) error
}
