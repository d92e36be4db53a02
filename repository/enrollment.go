package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// EnrollStudent inserts an enrollment row unconditionally. There is no
// existence check and no uniqueness constraint, so enrolling twice in the
// same course creates two rows.
func EnrollStudent(db *gorm.DB, courseID, studentID string) (*models.CourseEnrollment, error) {
	enrollment := models.CourseEnrollment{
		CourseID:  courseID,
		StudentID: studentID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetEnrollments returns every enrollment of a course.
func GetEnrollments(db *gorm.DB, courseID string) ([]models.CourseEnrollment, error) {
	var enrollments []models.CourseEnrollment
	if err := db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
