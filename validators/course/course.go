package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated course creation body.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"max=255"`
}

// CreateCourse validates course creation requests
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Subject = strings.TrimSpace(reqData.Subject)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateUnitRequest is the validated unit creation body.
type CreateUnitRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex" validate:"gte=0"`
}

// CreateUnit validates unit creation requests
func CreateUnit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUnitRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedUnit", reqData)
		return c.Next()
	}
}

// CreateLessonRequest is the validated lesson creation body.
type CreateLessonRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=255"`
	Content    string `json:"content"`
	OrderIndex int    `json:"orderIndex" validate:"gte=0"`
	XpReward   *int   `json:"xpReward" validate:"omitempty,gte=0"`
}

// CreateLesson validates lesson creation requests
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
