package organizationRoutes

import (
	organizationController "lms/controllers/organization"
	"lms/middleware"
	"lms/models"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupOrganizationRoutes sets up admin-only organization management routes.
func SetupOrganizationRoutes(app *fiber.App) {
	app.Get("/api/organizations/:orgId/users", middleware.Protected, middleware.RequireRoles(models.RoleAdmin), organizationController.GetOrganizationUsers)
	app.Patch("/api/users/:userId/role", middleware.Protected, userValidator.UpdateRole(), middleware.RequireRoles(models.RoleAdmin), organizationController.UpdateUserRole)
}
