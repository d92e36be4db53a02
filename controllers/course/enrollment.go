package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/repository"

	"github.com/gofiber/fiber/v2"
)

// Enroll adds the caller to a course. There is no duplicate check: calling
// this twice for the same course creates two enrollment rows.
func Enroll(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	courseID := c.Params("courseId")
	enrollment, err := repository.EnrollStudent(db, courseID, userID)
	if err != nil {
		log.Printf("[COURSE] Error enrolling student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetCourseEnrollments lists every enrollment of a course.
func GetCourseEnrollments(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID := c.Params("courseId")
	enrollments, err := repository.GetEnrollments(db, courseID)
	if err != nil {
		log.Printf("[COURSE] Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
