package assignmentValidator

import (
	"strings"
	"time"

	"lms/middleware"
	"lms/models"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateAssignmentRequest is the validated assignment creation body.
type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
	CourseID    string `json:"courseId" validate:"required"`
	UnitID      string `json:"unitId"`
	DueDate     string `json:"dueDate"`
	TotalPoints *int   `json:"totalPoints" validate:"omitempty,gte=0"`
	Status      string `json:"status"`
	XpReward    *int   `json:"xpReward" validate:"omitempty,gte=0"`

	ParsedDueDate *time.Time `json:"-"`
}

// CreateAssignment validates assignment creation requests
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAssignmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		errors := make(map[string]string)

		if reqData.Status != "" && !models.ValidAssignmentStatus(reqData.Status) {
			errors["status"] = "Status must be draft, published, or closed!"
		}

		if reqData.DueDate != "" {
			dueDate, err := time.Parse(time.RFC3339, reqData.DueDate)
			if err != nil {
				errors["dueDate"] = "Due date must be an RFC3339 timestamp!"
			} else {
				reqData.ParsedDueDate = &dueDate
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// SubmitAssignmentRequest is the validated submission body.
type SubmitAssignmentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// SubmitAssignment validates assignment submission requests
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAssignmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// GradeSubmissionRequest is the validated grading body.
type GradeSubmissionRequest struct {
	Score    *int   `json:"score" validate:"required,gte=0"`
	Feedback string `json:"feedback"`
}

// GradeSubmission validates grading requests
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GradeSubmissionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
