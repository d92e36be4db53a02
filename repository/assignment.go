package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// GetAssignment fetches an assignment by id.
func GetAssignment(db *gorm.DB, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := db.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, translate(err)
	}
	return &assignment, nil
}

// CreateAssignment inserts and returns a new assignment.
func CreateAssignment(db *gorm.DB, assignment *models.Assignment) (*models.Assignment, error) {
	if err := db.Create(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetAssignmentsByTeacher returns every assignment created by the teacher.
func GetAssignmentsByTeacher(db *gorm.DB, teacherID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := db.Where("teacher_id = ?", teacherID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetAssignmentsByCourse returns every assignment of a course.
func GetAssignmentsByCourse(db *gorm.DB, courseID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := db.Where("course_id = ?", courseID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetPendingGrading returns the submitted, not yet graded submissions for
// assignments owned by the teacher.
func GetPendingGrading(db *gorm.DB, teacherID string) ([]models.AssignmentSubmission, error) {
	var submissions []models.AssignmentSubmission
	err := db.Model(&models.AssignmentSubmission{}).
		Select("assignment_submissions.*").
		Joins("JOIN assignments ON assignments.id = assignment_submissions.assignment_id").
		Where("assignments.teacher_id = ? AND assignment_submissions.status = ?",
			teacherID, models.SubmissionSubmitted).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
