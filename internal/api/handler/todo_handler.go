package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/todo-api/internal/api/metrics"
	"github.com/taskforge/todo-api/internal/core/domain"
	"github.com/taskforge/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations. All routes run
// behind the Auth middleware; the user id comes from the verified token.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List handles GET /todo.
//
// @Summary      List own todos
// @Tags         todo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Router       /todo [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.service.GetTodos(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoListResponse(todos))
}

// Get handles GET /todo/:id. A todo that is missing or owned by another user
// yields 200 with a null body, never 403 or 404.
//
// @Summary      Get one todo by id
// @Tags         todo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  todoResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /todo/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.GetTodoByID(c.Request().Context(), userID, todoID)
	if err != nil {
		return err
	}
	if todo == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Create handles POST /todo.
//
// @Summary      Create a todo
// @Tags         todo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo fields"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.CreateTodo(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Edit handles PATCH /todo/:id. Missing todo and foreign owner both map to
// 403 through domain.ErrAccessForbidden.
//
// @Summary      Edit a todo
// @Tags         todo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Todo id"
// @Param        body  body      editTodoRequest  true  "Fields to change"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /todo/{id} [patch]
func (h *TodoHandler) Edit(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	var req editTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.EditTodoByID(c.Request().Context(), userID, todoID, toEditInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrAccessForbidden) {
			metrics.OwnershipDeniedTotal.WithLabelValues("edit").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete handles DELETE /todo/:id with the same ownership policy as Edit.
//
// @Summary      Delete a todo
// @Tags         todo
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTodoByID(c.Request().Context(), userID, todoID); err != nil {
		if errors.Is(err, domain.ErrAccessForbidden) {
			metrics.OwnershipDeniedTotal.WithLabelValues("delete").Inc()
		}
		return err
	}

	metrics.ItemsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
