package repository

import (
	"lms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateProgress upserts a progress row keyed on (student_id, lesson_id):
// an existing row has completed, completed_at and time_spent overwritten,
// otherwise a new row is inserted. The row count for the pair stays 1.
func UpdateProgress(db *gorm.DB, progress *models.StudentProgress) (*models.StudentProgress, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed", "completed_at", "time_spent", "updated_at",
		}),
	}).Create(progress).Error
	if err != nil {
		return nil, err
	}

	var saved models.StudentProgress
	err = db.Where("student_id = ? AND lesson_id = ?", progress.StudentID, progress.LessonID).
		First(&saved).Error
	if err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

// GetStudentProgress returns a student's progress rows, optionally filtered
// to the lessons of one course. Pass an empty courseID for all rows.
func GetStudentProgress(db *gorm.DB, studentID, courseID string) ([]models.StudentProgress, error) {
	var progress []models.StudentProgress

	if courseID == "" {
		if err := db.Where("student_id = ?", studentID).Find(&progress).Error; err != nil {
			return nil, err
		}
		return progress, nil
	}

	err := db.Model(&models.StudentProgress{}).
		Select("student_progress.*").
		Joins("JOIN lessons ON lessons.id = student_progress.lesson_id").
		Joins("JOIN course_units ON course_units.id = lessons.unit_id").
		Where("student_progress.student_id = ? AND course_units.course_id = ?", studentID, courseID).
		Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}
