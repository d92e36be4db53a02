package assignmentController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	assignmentValidator "lms/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// CreateAssignment creates an assignment owned by the caller. The target
// course is resolved scoped to the caller's organization.
func CreateAssignment(c *fiber.Ctx) error {
	db := database.Database.Db

	user, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.CreateAssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment data!", nil)
	}

	course, err := repository.GetCourseInOrganization(db, reqData.CourseID, user.OrganizationID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	assignment := models.Assignment{
		Title:       reqData.Title,
		Description: reqData.Description,
		CourseID:    course.ID,
		UnitID:      reqData.UnitID,
		TeacherID:   user.ID,
		DueDate:     reqData.ParsedDueDate,
	}
	if reqData.Status != "" {
		assignment.Status = reqData.Status
	} else {
		assignment.Status = models.AssignmentDraft
	}
	if reqData.TotalPoints != nil {
		assignment.TotalPoints = *reqData.TotalPoints
	} else {
		assignment.TotalPoints = 100
	}
	if reqData.XpReward != nil {
		assignment.XpReward = *reqData.XpReward
	} else {
		assignment.XpReward = 20
	}

	created, err := repository.CreateAssignment(db, &assignment)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", created)
}

// GetMyAssignments lists the caller's assignments.
func GetMyAssignments(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	assignments, err := repository.GetAssignmentsByTeacher(db, userID)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching assignments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// GetCourseAssignments lists the assignments of a course.
func GetCourseAssignments(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID := c.Params("courseId")
	assignments, err := repository.GetAssignmentsByCourse(db, courseID)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching assignments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// GetPendingGrading lists submitted, ungraded submissions for assignments
// owned by the caller.
func GetPendingGrading(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	submissions, err := repository.GetPendingGrading(db, userID)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching pending grading: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending grading!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending grading fetched successfully!", submissions)
}
