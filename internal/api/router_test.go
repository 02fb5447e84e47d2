package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/infrastructure/config"
	"github.com/taskforge/todo-api/internal/infrastructure/db/sqlite"
)

// The prometheus middleware registers collectors in the default registry,
// so the router is built exactly once and the scenario runs as sequential
// subtests against it.
func TestServer_EndToEnd(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "e2e.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "e2e-test-secret",
		TokenTTL:  10 * time.Minute,
	}
	srv := httptest.NewServer(NewRouter(db, cfg, zerolog.Nop()))
	t.Cleanup(srv.Close)

	do := func(t *testing.T, method, path, token, body string) (*http.Response, []byte) {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = bytes.NewBufferString(body)
		}
		req, err := http.NewRequest(method, srv.URL+path, reader)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return resp, raw
	}

	decode := func(t *testing.T, raw []byte) map[string]any {
		t.Helper()
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("invalid json %q: %v", raw, err)
		}
		return m
	}

	var (
		aliceToken string
		bobToken   string
		todoID     int64
	)

	t.Run("signup returns a token", func(t *testing.T) {
		resp, raw := do(t, http.MethodPost, "/auth/signup", "", `{"email":"alice@example.com","password":"secret123"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
		}
		aliceToken, _ = decode(t, raw)["access_token"].(string)
		if aliceToken == "" {
			t.Fatalf("missing access_token: %s", raw)
		}
	})

	t.Run("duplicate signup is rejected", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, "/auth/signup", "", `{"email":"alice@example.com","password":"other"}`)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("login issues a fresh token", func(t *testing.T) {
		resp, raw := do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"secret123"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}
		token, _ := decode(t, raw)["access_token"].(string)
		if token == "" {
			t.Fatalf("missing access_token: %s", raw)
		}
		aliceToken = token
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, "/auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown email is rejected the same way", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, "/auth/login", "", `{"email":"nobody@example.com","password":"secret123"}`)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("protected routes require a token", func(t *testing.T) {
		for _, probe := range []struct{ method, path string }{
			{http.MethodGet, "/user/me"},
			{http.MethodGet, "/todo"},
			{http.MethodPost, "/todo"},
		} {
			resp, _ := do(t, probe.method, probe.path, "", "")
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("%s %s: expected 401, got %d", probe.method, probe.path, resp.StatusCode)
			}
		}
	})

	t.Run("me returns the profile without the hash", func(t *testing.T) {
		resp, raw := do(t, http.MethodGet, "/user/me", aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}
		me := decode(t, raw)
		if me["email"] != "alice@example.com" {
			t.Fatalf("unexpected profile: %s", raw)
		}
		if strings.Contains(strings.ToLower(string(raw)), "hash") {
			t.Fatalf("password hash leaked: %s", raw)
		}
	})

	t.Run("profile update is partial", func(t *testing.T) {
		resp, raw := do(t, http.MethodPatch, "/user", aliceToken, `{"firstName":"Alice","lastName":"Smith"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}
		me := decode(t, raw)
		if me["firstName"] != "Alice" || me["lastName"] != "Smith" {
			t.Fatalf("names not updated: %s", raw)
		}
	})

	t.Run("todo list starts empty", func(t *testing.T) {
		resp, raw := do(t, http.MethodGet, "/todo", aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body := strings.TrimSpace(string(raw)); body != "[]" {
			t.Fatalf("expected empty array, got %q", body)
		}
	})

	t.Run("create todo", func(t *testing.T) {
		resp, raw := do(t, http.MethodPost, "/todo", aliceToken, `{"title":"Buy milk","description":"two liters"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
		}
		created := decode(t, raw)
		id, ok := created["id"].(float64)
		if !ok || id <= 0 {
			t.Fatalf("missing id: %s", raw)
		}
		todoID = int64(id)
		if created["title"] != "Buy milk" || created["completed"] != false {
			t.Fatalf("unexpected todo: %s", raw)
		}
	})

	t.Run("create todo without title fails", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, "/todo", aliceToken, `{"description":"no title"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("list and get reflect the new todo", func(t *testing.T) {
		resp, raw := do(t, http.MethodGet, "/todo", aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list) != 1 || list[0]["title"] != "Buy milk" {
			t.Fatalf("unexpected list: %s", raw)
		}

		resp, raw = do(t, http.MethodGet, "/todo/"+strconv.FormatInt(todoID, 10), aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if decode(t, raw)["title"] != "Buy milk" {
			t.Fatalf("unexpected todo: %s", raw)
		}
	})

	t.Run("edit is partial", func(t *testing.T) {
		resp, raw := do(t, http.MethodPatch, "/todo/"+strconv.FormatInt(todoID, 10), aliceToken, `{"description":"Test","completed":true}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
		}
		edited := decode(t, raw)
		if edited["title"] != "Buy milk" {
			t.Fatalf("title should be untouched: %s", raw)
		}
		if edited["description"] != "Test" || edited["completed"] != true {
			t.Fatalf("edit not applied: %s", raw)
		}
	})

	t.Run("second user cannot see or touch it", func(t *testing.T) {
		resp, raw := do(t, http.MethodPost, "/auth/signup", "", `{"email":"bob@example.com","password":"hunter22"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("bob signup: expected 201, got %d", resp.StatusCode)
		}
		bobToken, _ = decode(t, raw)["access_token"].(string)

		idPath := "/todo/" + strconv.FormatInt(todoID, 10)

		// Read of a foreign todo is silently null.
		resp, raw = do(t, http.MethodGet, idPath, bobToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body := strings.TrimSpace(string(raw)); body != "null" {
			t.Fatalf("expected null, got %q", body)
		}

		// Writes are hard failures.
		resp, _ = do(t, http.MethodPatch, idPath, bobToken, `{"title":"stolen"}`)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("edit: expected 403, got %d", resp.StatusCode)
		}
		resp, _ = do(t, http.MethodDelete, idPath, bobToken, "")
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("delete: expected 403, got %d", resp.StatusCode)
		}

		// And the original is untouched.
		resp, raw = do(t, http.MethodGet, idPath, aliceToken, "")
		if resp.StatusCode != http.StatusOK || decode(t, raw)["title"] != "Buy milk" {
			t.Fatalf("owner view changed: %d %s", resp.StatusCode, raw)
		}
	})

	t.Run("owner deletes the todo", func(t *testing.T) {
		idPath := "/todo/" + strconv.FormatInt(todoID, 10)

		resp, _ := do(t, http.MethodDelete, idPath, aliceToken, "")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", resp.StatusCode)
		}

		resp, raw := do(t, http.MethodGet, "/todo", aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body := strings.TrimSpace(string(raw)); body != "[]" {
			t.Fatalf("expected empty array, got %q", body)
		}

		resp, raw = do(t, http.MethodGet, idPath, aliceToken, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if body := strings.TrimSpace(string(raw)); body != "null" {
			t.Fatalf("expected null, got %q", body)
		}

		resp, _ = do(t, http.MethodDelete, idPath, aliceToken, "")
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("double delete: expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("probes and metrics are exposed", func(t *testing.T) {
		resp, raw := do(t, http.MethodGet, "/health", "", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("liveness: expected 200, got %d", resp.StatusCode)
		}
		if decode(t, raw)["status"] != "ok" {
			t.Fatalf("unexpected liveness body: %s", raw)
		}

		resp, _ = do(t, http.MethodGet, "/health/ready", "", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("readiness: expected 200, got %d", resp.StatusCode)
		}

		resp, raw = do(t, http.MethodGet, "/metrics", "", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("metrics: expected 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(string(raw), "todo_signups_total") {
			t.Fatalf("signup counter missing from metrics output")
		}
	})
}
