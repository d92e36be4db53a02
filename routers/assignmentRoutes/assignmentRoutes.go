package assignmentRoutes

import (
	assignmentController "lms/controllers/assignment"
	"lms/middleware"
	"lms/models"
	assignmentValidator "lms/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up assignment, submission and grading routes.
func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/api/assignments", middleware.Protected)

	assignmentGroup.Post("/", assignmentValidator.CreateAssignment(), middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), assignmentController.CreateAssignment)
	assignmentGroup.Get("/", middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), assignmentController.GetMyAssignments)
	assignmentGroup.Get("/pending-grading", assignmentController.GetPendingGrading)
	assignmentGroup.Post("/:assignmentId/submit", assignmentValidator.SubmitAssignment(), assignmentController.SubmitAssignment)

	// Assignments listed per course
	app.Get("/api/courses/:courseId/assignments", middleware.Protected, assignmentController.GetCourseAssignments)

	submissionGroup := app.Group("/api/submissions", middleware.Protected)
	submissionGroup.Get("/my", assignmentController.GetMySubmissions)
	submissionGroup.Put("/:submissionId/grade", assignmentValidator.GradeSubmission(), middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin), assignmentController.GradeSubmission)
}
