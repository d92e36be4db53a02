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

// CreateLesson adds a lesson to a unit. Like unit creation, the parent unit
// is resolved scoped to the caller's organization.
func CreateLesson(c *fiber.Ctx) error {
	db := database.Database.Db

	user, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson data!", nil)
	}

	unitID := c.Params("unitId")
	unit, err := repository.GetCourseUnitInOrganization(db, unitID, user.OrganizationID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course unit not found!", nil)
	}
	if err != nil {
		log.Printf("[COURSE] Error fetching course unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	lesson := models.Lesson{
		Title:      reqData.Title,
		Content:    reqData.Content,
		UnitID:     unit.ID,
		OrderIndex: reqData.OrderIndex,
	}
	if reqData.XpReward != nil {
		lesson.XpReward = *reqData.XpReward
	} else {
		lesson.XpReward = 10
	}

	created, err := repository.CreateLesson(db, &lesson)
	if err != nil {
		log.Printf("[COURSE] Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", created)
}

// GetLessons lists a unit's lessons in display order.
func GetLessons(c *fiber.Ctx) error {
	db := database.Database.Db

	unitID := c.Params("unitId")
	lessons, err := repository.GetLessonsByUnit(db, unitID)
	if err != nil {
		log.Printf("[COURSE] Error fetching lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
