package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, unit, lesson and enrollment routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.Protected)

	courseGroup.Post("/", courseValidator.CreateCourse(), middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), courseController.CreateCourse)
	courseGroup.Get("/", courseController.GetCourses)

	// Units
	courseGroup.Post("/:courseId/units", courseValidator.CreateUnit(), middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), courseController.CreateUnit)
	courseGroup.Get("/:courseId/units", courseController.GetUnits)

	// Enrollment
	courseGroup.Post("/:courseId/enroll", courseController.Enroll)
	courseGroup.Get("/:courseId/enrollments", middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), courseController.GetCourseEnrollments)

	// Lessons hang off units rather than courses
	unitGroup := app.Group("/api/units", middleware.Protected)
	unitGroup.Post("/:unitId/lessons", courseValidator.CreateLesson(), middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), courseController.CreateLesson)
	unitGroup.Get("/:unitId/lessons", courseController.GetLessons)
}
