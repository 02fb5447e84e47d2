package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/core/domain"
	"github.com/taskforge/todo-api/internal/core/ports"
)

// TodoService implements CRUD on todos scoped to the authenticated user.
//
// Two ownership policies coexist on purpose: GetTodoByID silently returns an
// empty result for a todo the caller does not own, while EditTodoByID and
// DeleteTodoByID fail hard with ErrAccessForbidden. This mirrors the observed
// contract of the service and must not be unified.
type TodoService struct {
	todos ports.TodoRepository
	log   zerolog.Logger
}

func NewTodoService(todos ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{todos: todos, log: log}
}

func (s *TodoService) CreateTodo(ctx context.Context, userID int64, input ports.CreateTodoInput) (*domain.Todo, error) {
	now := time.Now().UTC()
	todo := &domain.Todo{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create todo")
		return nil, err
	}

	s.log.Info().Int64("todo_id", todo.ID).Int64("user_id", userID).Msg("todo created")
	return todo, nil
}

func (s *TodoService) GetTodos(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

// GetTodoByID returns the todo only when it belongs to userID. A missing or
// foreign todo yields (nil, nil), never an error.
func (s *TodoService) GetTodoByID(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
	todo, err := s.todos.FindByUserAndID(ctx, userID, todoID)
	if errors.Is(err, domain.ErrTodoNotFound) {
		return nil, nil
	}
	return todo, err
}

// EditTodoByID merges the non-nil fields of input into the todo row.
func (s *TodoService) EditTodoByID(ctx context.Context, userID, todoID int64, input ports.EditTodoInput) (*domain.Todo, error) {
	todo, err := s.loadOwned(ctx, userID, todoID, "edit")
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Link != nil {
		todo.Link = *input.Link
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) DeleteTodoByID(ctx context.Context, userID, todoID int64) error {
	todo, err := s.loadOwned(ctx, userID, todoID, "delete")
	if err != nil {
		return err
	}

	if err := s.todos.Delete(ctx, todo.ID); err != nil {
		return err
	}

	s.log.Info().Int64("todo_id", todoID).Int64("user_id", userID).Msg("todo deleted")
	return nil
}

// loadOwned fetches the todo by id alone and enforces the hard ownership
// check used by mutations: missing row and owner mismatch are both
// ErrAccessForbidden.
func (s *TodoService) loadOwned(ctx context.Context, userID, todoID int64, op string) (*domain.Todo, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			return nil, domain.ErrAccessForbidden
		}
		return nil, err
	}
	if todo.UserID != userID {
		s.log.Warn().
			Int64("todo_id", todoID).
			Int64("owner_id", todo.UserID).
			Int64("user_id", userID).
			Str("operation", op).
			Msg("ownership check failed")
		return nil, domain.ErrAccessForbidden
	}
	return todo, nil
}
