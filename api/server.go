package api

import (
	"time"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
	"github.com/CristiGvl/picoCPUCount/internal/probe"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server
type Server struct {
	app        *fiber.App
	dispatcher *probe.Dispatcher
}

// NewServer creates an API server over the default probe dispatcher
func NewServer() (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}
	return NewServerWith(probe.Default()), nil
}

// NewServerWith creates an API server over a specific dispatcher
func NewServerWith(dispatcher *probe.Dispatcher) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "picoCPUCount",
		AppName:      "picoCPUCount v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "*",
	}))

	server := &Server{
		app:        app,
		dispatcher: dispatcher,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Count endpoints
	api.Get("/cpu", s.getCounts)
	api.Get("/cpu/cores", s.getCores)
	api.Get("/cpu/processors", s.getProcessors)

	// Health check
	api.Get("/health", s.healthCheck)
}

// App exposes the underlying fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.Current(),
		"platforms": s.dispatcher.Registry.Keys(),
		"timestamp": time.Now().Unix(),
	})
}
