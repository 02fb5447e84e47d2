// Package api assembles the HTTP surface: routing, middleware, and the
// translation of domain errors into status codes.
package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/taskforge/todo-api/internal/api/handler"
	"github.com/taskforge/todo-api/internal/api/middleware"
	"github.com/taskforge/todo-api/internal/core/service"
	"github.com/taskforge/todo-api/internal/infrastructure/config"
	"github.com/taskforge/todo-api/internal/infrastructure/db/sqlite"
	"github.com/taskforge/todo-api/internal/pkg/password"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Composition is explicit: repositories from the db handle, services from
// repositories plus hasher and signing secret, handlers from services.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	todoRepo := sqlite.NewTodoRepository(db)
	hasher := password.NewHasher()

	authService := service.NewAuthService(userRepo, hasher, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	todoService := service.NewTodoService(todoRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	todoHandler := handler.NewTodoHandler(todoService)
	healthHandler := handler.NewHealthHandler(db)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	user := e.Group("/user", requireAuth)
	user.GET("/me", userHandler.Me)
	user.PATCH("", userHandler.Update)

	todo := e.Group("/todo", requireAuth)
	todo.GET("", todoHandler.List)
	todo.POST("", todoHandler.Create)
	todo.GET("/:id", todoHandler.Get)
	todo.PATCH("/:id", todoHandler.Edit)
	todo.DELETE("/:id", todoHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
