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

// CreateCourse creates a course owned by the caller's organization with the
// caller as teacher, and logs a course_created analytics event.
func CreateCourse(c *fiber.Ctx) error {
	db := database.Database.Db

	user, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course data!", nil)
	}

	course, err := repository.CreateCourse(db, &models.Course{
		Title:          reqData.Title,
		Description:    reqData.Description,
		Subject:        reqData.Subject,
		OrganizationID: user.OrganizationID,
		TeacherID:      user.ID,
	})
	if err != nil {
		log.Printf("[COURSE] Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	event := repository.NewEvent(user.ID, user.OrganizationID, "course_created", map[string]interface{}{
		"courseId": course.ID,
		"title":    course.Title,
	})
	if _, err := repository.LogEvent(db, event); err != nil {
		log.Printf("[COURSE] Error logging course_created event: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetCourses lists courses filtered by the caller's role: taught courses
// for teachers, enrolled courses for students, every organization course
// for admins. Other roles see an empty list.
func GetCourses(c *fiber.Ctx) error {
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
		log.Printf("[COURSE] Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courses := []models.Course{}
	switch user.Role {
	case models.RoleTeacher:
		courses, err = repository.GetCoursesByTeacher(db, userID)
	case models.RoleStudent:
		courses, err = repository.GetEnrolledCourses(db, userID)
	case models.RoleAdmin:
		courses, err = repository.GetCoursesByOrganization(db, user.OrganizationID)
	}
	if err != nil {
		log.Printf("[COURSE] Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
