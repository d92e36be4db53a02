package userValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// UpdateRoleRequest is the validated role change body.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student teacher admin parent"`
}

// UpdateRole validates role change requests
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRoleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
