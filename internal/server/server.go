// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"reentrybuddy/internal/config"
	"reentrybuddy/internal/middleware"
	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/service"
	"reentrybuddy/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	kv             storage.KV
	store          repository.RecordStore
	authService    *service.AuthService
	checkInService *service.CheckInService
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	var kv storage.KV
	var err error

	switch cfg.StorageDriver {
	case config.DriverRedis:
		kv, err = storage.NewRedisKV(cfg.RedisURL)
	default:
		kv, err = storage.NewSQLiteKV(cfg.SQLitePath)
	}
	if err != nil {
		return nil, fmt.Errorf("storage connection failed: %w", err)
	}

	return NewServerWithDeps(cfg, kv), nil
}

// NewServerWithDeps creates a Server using an already-initialized store.
// Use this in tests or when a bootstrap layer establishes storage.
func NewServerWithDeps(cfg *config.Config, kv storage.KV) *Server {
	store := repository.NewRecordStore(kv, cfg.StorageNamespace)

	return &Server{
		config:         cfg,
		kv:             kv,
		store:          store,
		authService:    service.NewAuthService(store),
		checkInService: service.NewCheckInService(store),
		promMiddleware: middleware.InitMetrics("reentrybuddy-api"),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing log lines back to requests
	app.Use(requestid.New())

	// Propagate the request ID into the request context for slog
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signin", s.SignIn)
	auth.Post("/signout", s.SignOut)
	auth.Get("/me", s.Me)

	api.Get("/checkins", s.LoadCheckIns)
	api.Post("/checkins", s.AddCheckIn)

	api.Delete("/users", s.ClearUser)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
