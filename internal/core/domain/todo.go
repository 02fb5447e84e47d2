package domain

import (
	"errors"
	"time"
)

var (
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAccessForbidden is returned when a mutation targets a todo the
	// requesting user does not own, or one that does not exist. The two cases
	// are deliberately indistinguishable to avoid leaking which ids exist.
	ErrAccessForbidden = errors.New("access forbidden")
)

// Todo is a single list item owned by exactly one user. UserID is set at
// creation and never changes.
type Todo struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
