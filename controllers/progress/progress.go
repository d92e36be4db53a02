package progressController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	progressValidator "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress upserts the caller's progress for a lesson. Repeating the
// call for the same lesson keeps a single row and the latest values win. A
// completed lesson is logged as a lesson_completed analytics event.
func UpdateProgress(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid progress data!", nil)
	}

	progress := models.StudentProgress{
		StudentID: userID,
		LessonID:  reqData.LessonID,
		Completed: reqData.Completed,
		TimeSpent: reqData.TimeSpent,
	}
	if reqData.Completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	saved, err := repository.UpdateProgress(db, &progress)
	if err != nil {
		log.Printf("[PROGRESS] Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	if saved.Completed {
		if user, err := repository.GetUser(db, userID); err == nil {
			event := repository.NewEvent(userID, user.OrganizationID, "lesson_completed", map[string]interface{}{
				"lessonId": saved.LessonID,
			})
			if _, err := repository.LogEvent(db, event); err != nil {
				log.Printf("[PROGRESS] Error logging lesson_completed event: %v", err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", saved)
}

// GetProgress lists the caller's progress rows, optionally filtered by
// ?courseId=.
func GetProgress(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	courseID := c.Query("courseId")
	progress, err := repository.GetStudentProgress(db, userID, courseID)
	if err != nil {
		log.Printf("[PROGRESS] Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}
