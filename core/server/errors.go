package server

import (
	"errors"

	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a storage error to the HTTP status returned to API clients.
// Client errors reported by the remote store are passed through; anything else is a bad gateway.
func StatusFor(err error) int {
	if errors.Is(err, storage.ErrInvalidArgument) {
		return fiber.StatusBadRequest
	}
	if status := storage.StatusCode(err); status >= 400 && status < 500 {
		return status
	}
	if storage.IsNotFound(err) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadGateway
}

// Error writes err as a JSON error body with the mapped status.
func Error(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if code := storage.ErrorCode(err); code != "" {
		body["code"] = code
	}
	return c.Status(StatusFor(err)).JSON(body)
}
