package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskforge/todo-api/internal/core/domain"
)

// TodoRepository implements ports.TodoRepository on SQLite.
type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const todoColumns = `id, user_id, title, description, link, completed, created_at, updated_at`

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (user_id, title, description, link, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		todo.UserID, todo.Title, todo.Description, todo.Link, todo.Completed, todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	todo.ID = id
	return nil
}

// ListByUser returns the user's todos ordered by id ascending, which is
// creation order for an autoincrement key.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY id ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id,
	))
}

func (r *TodoRepository) FindByUserAndID(ctx context.Context, userID, id int64) (*domain.Todo, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ? AND user_id = ?`, id, userID,
	))
}

// Update persists the mutable fields. user_id is deliberately not part of the
// statement: ownership never changes.
func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, link = ?, completed = ?, updated_at = ? WHERE id = ?`,
		todo.Title, todo.Description, todo.Link, todo.Completed, todo.UpdatedAt, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*domain.Todo, error) {
	todo := &domain.Todo{}
	err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Link, &todo.Completed, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan todo: %w", err)
	}
	return todo, nil
}

func (r *TodoRepository) scanOne(row *sql.Row) (*domain.Todo, error) {
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}
