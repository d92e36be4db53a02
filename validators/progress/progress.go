package progressValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgressRequest is the validated progress upsert body.
type UpdateProgressRequest struct {
	LessonID  string `json:"lessonId" validate:"required"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent" validate:"gte=0"`
}

// UpdateProgress validates progress upsert requests
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
