package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate credentials", domain.ErrDuplicateCredentials, http.StatusForbidden, "duplicate credentials"},
		{"email not valid", domain.ErrEmailNotValid, http.StatusForbidden, "invalid credentials"},
		{"password not valid", domain.ErrPasswordNotValid, http.StatusForbidden, "invalid credentials"},
		{"wrapped invalid credentials", fmt.Errorf("login: %w", domain.ErrPasswordNotValid), http.StatusForbidden, "invalid credentials"},
		{"access forbidden", domain.ErrAccessForbidden, http.StatusForbidden, "access forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"todo not found", domain.ErrTodoNotFound, http.StatusNotFound, "todo not found"},
		{"echo error passthrough", echo.NewHTTPError(http.StatusBadRequest, "title is required"), http.StatusBadRequest, "title is required"},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_SameOutcomeForBothLoginReasons(t *testing.T) {
	// The two internal login rejection reasons must be indistinguishable at
	// the boundary: same status, same message.
	handler := NewHTTPErrorHandler(zerolog.Nop())

	render := func(err error) (int, string) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()
		handler(err, e.NewContext(req, rec))
		return rec.Code, rec.Body.String()
	}

	emailCode, emailBody := render(domain.ErrEmailNotValid)
	pwCode, pwBody := render(domain.ErrPasswordNotValid)

	if emailCode != pwCode || emailBody != pwBody {
		t.Fatalf("login failure responses differ: (%d, %q) vs (%d, %q)", emailCode, emailBody, pwCode, pwBody)
	}
}
