package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the uniform response envelope used by every handler.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes a 400 with per-field error messages.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
