package dashboardController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns role-dependent dashboard aggregates: organization-wide
// counters for admins, grading/course counters for teachers, lesson/XP
// counters for students. Parents currently have no aggregate view and get
// an empty object.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	user, err := repository.GetUser(db, userID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if err != nil {
		log.Printf("[DASHBOARD] Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	if user.OrganizationID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not associated with organization!", nil)
	}

	var stats interface{}
	switch user.Role {
	case models.RoleAdmin:
		stats, err = repository.GetDashboardStats(db, user.OrganizationID)
	case models.RoleTeacher:
		stats, err = repository.GetTeacherInsights(db, userID)
	case models.RoleStudent:
		stats, err = repository.GetStudentInsights(db, userID)
	default:
		stats = fiber.Map{}
	}
	if err != nil {
		log.Printf("[DASHBOARD] Error computing stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
