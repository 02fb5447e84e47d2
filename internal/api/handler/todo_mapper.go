package handler

import (
	"github.com/taskforge/todo-api/internal/core/domain"
	"github.com/taskforge/todo-api/internal/core/ports"
)

func toCreateInput(req createTodoRequest) ports.CreateTodoInput {
	return ports.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
}

func toEditInput(req editTodoRequest) ports.EditTodoInput {
	return ports.EditTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Completed:   req.Completed,
	}
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Link:        t.Link,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toTodoListResponse(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}
