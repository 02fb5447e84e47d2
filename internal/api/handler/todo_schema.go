package handler

import "time"

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	Link        string `json:"link"        validate:"omitempty,max=2048"`
}

// editTodoRequest carries a partial edit. Pointer fields distinguish "not
// sent" from an explicit empty value.
type editTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2048"`
	Link        *string `json:"link"        validate:"omitempty,max=2048"`
	Completed   *bool   `json:"completed"`
}

// --- Response types ---

// todoResponse is owned by the transport layer so the JSON contract is not
// coupled to internal domain changes.
type todoResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
