package assignmentController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	assignmentValidator "lms/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssignment records the caller's response to an assignment with
// status submitted.
func SubmitAssignment(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*assignmentValidator.SubmitAssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission data!", nil)
	}

	assignmentID := c.Params("assignmentId")
	if _, err := repository.GetAssignment(db, assignmentID); err != nil {
		if err == repository.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		log.Printf("[ASSIGNMENT] Error fetching assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	now := time.Now()
	submission, err := repository.CreateSubmission(db, &models.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    userID,
		Content:      reqData.Content,
		Status:       models.SubmissionSubmitted,
		SubmittedAt:  &now,
	})
	if err != nil {
		log.Printf("[ASSIGNMENT] Error creating submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

// GradeSubmission records a score and feedback on a submission. Ownership
// is verified by walking submission -> assignment -> course: the course
// must belong to the caller's organization, and a teacher (unlike an
// admin) must own the assignment. The walk and the grade write are not one
// transaction, mirroring the single-row-update semantics of each step.
func GradeSubmission(c *fiber.Ctx) error {
	db := database.Database.Db

	user, ok := middleware.CallerUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	if user.OrganizationID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not associated with organization!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*assignmentValidator.GradeSubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid grade data!", nil)
	}

	submissionID := c.Params("submissionId")
	submission, err := repository.GetSubmission(db, submissionID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	assignment, err := repository.GetAssignment(db, submission.AssignmentID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	course, err := repository.GetCourse(db, assignment.CourseID)
	if err != nil || course.OrganizationID != user.OrganizationID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: assignment not in your organization!", nil)
	}

	if user.Role == models.RoleTeacher && assignment.TeacherID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied: you can only grade your own assignments!", nil)
	}

	graded, err := repository.GradeSubmission(db, submissionID, *reqData.Score, reqData.Feedback)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error grading submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", graded)
}

// GetMySubmissions lists the caller's submissions, newest first.
func GetMySubmissions(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	submissions, err := repository.GetStudentSubmissions(db, userID)
	if err != nil {
		log.Printf("[ASSIGNMENT] Error fetching submissions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}
