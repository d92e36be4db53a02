package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateUnit adds a unit to a course. The parent course is fetched scoped
// to the caller's organization, so a course in another tenant reads as not
// found.
func CreateUnit(c *fiber.Ctx) error {
	db := database.Database.Db

	user, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedUnit").(*courseValidator.CreateUnitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid unit data!", nil)
	}

	courseID := c.Params("courseId")
	course, err := repository.GetCourseInOrganization(db, courseID, user.OrganizationID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		log.Printf("[COURSE] Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course unit!", nil)
	}

	unit, err := repository.CreateCourseUnit(db, &models.CourseUnit{
		Title:       reqData.Title,
		Description: reqData.Description,
		CourseID:    course.ID,
		OrderIndex:  reqData.OrderIndex,
	})
	if err != nil {
		log.Printf("[COURSE] Error creating course unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course unit created successfully!", unit)
}

// GetUnits lists a course's units in display order.
func GetUnits(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID := c.Params("courseId")
	units, err := repository.GetCourseUnits(db, courseID)
	if err != nil {
		log.Printf("[COURSE] Error fetching course units: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course units!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course units fetched successfully!", units)
}
