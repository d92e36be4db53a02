package organizationController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/repository"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// GetOrganizationUsers lists every user in an organization. Only admins of
// that same organization may call it.
func GetOrganizationUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	caller, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
	}

	orgID := c.Params("orgId")
	if caller.OrganizationID != orgID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: not your organization!", nil)
	}

	users, err := repository.GetUsersByOrganization(db, orgID)
	if err != nil {
		log.Printf("[ORG] Error fetching organization users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UpdateUserRole changes another user's role. The target must belong to the
// caller's organization.
func UpdateUserRole(c *fiber.Ctx) error {
	db := database.Database.Db

	caller, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
	}

	reqData, ok := c.Locals("validatedRole").(*userValidator.UpdateRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role data!", nil)
	}

	targetID := c.Params("userId")
	target, err := repository.GetUser(db, targetID)
	if err != nil {
		if err == repository.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[ORG] Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	if target.OrganizationID != caller.OrganizationID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: user not in your organization!", nil)
	}

	updated, err := repository.UpdateUserRole(db, targetID, reqData.Role)
	if err != nil {
		log.Printf("[ORG] Error updating user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", updated)
}
