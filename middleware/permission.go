package middleware

import (
	"lms/database"
	"lms/models"
	"lms/repository"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware allowing only callers whose user row
// carries one of the given roles. The allowed set for each route is declared
// once at registration instead of being re-checked inline per handler. The
// loaded user is stashed in Locals so handlers do not fetch it again.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := CallerID(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
		}

		user, err := repository.GetUser(database.Database.Db, userID)
		if err != nil {
			// An authenticated identity without a user row has no role to
			// match, which is a permission failure, not a missing resource.
			return JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
		}

		for _, role := range roles {
			if user.Role == role {
				c.Locals("authUser", user)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Insufficient permissions!", nil)
	}
}

// CallerUser returns the user row loaded by RequireRoles.
func CallerUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("authUser").(*models.User)
	return user, ok
}
