package api

import (
	"context"
	"errors"
	"time"

	"github.com/CristiGvl/picoCPUCount/internal/probe"
	"github.com/gofiber/fiber/v2"
)

// Full pair endpoint
func (s *Server) getCounts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	counts, err := s.dispatcher.Counts(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(counts)
}

// Cores endpoint
func (s *Server) getCores(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cores, err := s.dispatcher.Cores(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"cores": cores})
}

// Processors endpoint
func (s *Server) getProcessors(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	processors, err := s.dispatcher.Processors(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"processors": processors})
}

// writeError maps probe errors to HTTP statuses
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case errors.As(err, new(*probe.ConflictError)):
		status = fiber.StatusBadRequest
	case errors.As(err, new(*probe.UnavailableError)):
		status = fiber.StatusNotImplemented
	case errors.As(err, new(*probe.TimeoutError)):
		status = fiber.StatusGatewayTimeout
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
