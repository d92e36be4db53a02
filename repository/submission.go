package repository

import (
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// GetSubmission fetches a submission by id.
func GetSubmission(db *gorm.DB, id string) (*models.AssignmentSubmission, error) {
	var submission models.AssignmentSubmission
	if err := db.Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, translate(err)
	}
	return &submission, nil
}

// CreateSubmission inserts and returns a new submission.
func CreateSubmission(db *gorm.DB, submission *models.AssignmentSubmission) (*models.AssignmentSubmission, error) {
	if err := db.Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// GradeSubmission records a score and feedback, marking the submission
// graded. The previous status is not inspected: grading a pending or
// already-graded submission overwrites it.
func GradeSubmission(db *gorm.DB, submissionID string, score int, feedback string) (*models.AssignmentSubmission, error) {
	now := time.Now()
	result := db.Model(&models.AssignmentSubmission{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"score":     score,
			"feedback":  feedback,
			"status":    models.SubmissionGraded,
			"graded_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetSubmission(db, submissionID)
}

// GetStudentSubmissions returns a student's submissions, newest first.
func GetStudentSubmissions(db *gorm.DB, studentID string) ([]models.AssignmentSubmission, error) {
	var submissions []models.AssignmentSubmission
	err := db.Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
