package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// GetCourse fetches a course by id.
func GetCourse(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	if err := db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// GetCourseInOrganization fetches a course by id scoped to an organization.
// A course that exists but belongs to another tenant reads as not found.
func GetCourseInOrganization(db *gorm.DB, id, organizationID string) (*models.Course, error) {
	var course models.Course
	err := db.Where("id = ? AND organization_id = ?", id, organizationID).First(&course).Error
	if err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// CreateCourse inserts and returns a new course. The teacher's organization
// is not cross-checked against the course's organization here; callers
// derive both from the same authenticated user.
func CreateCourse(db *gorm.DB, course *models.Course) (*models.Course, error) {
	if err := db.Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// GetCoursesByTeacher returns every course taught by the teacher.
func GetCoursesByTeacher(db *gorm.DB, teacherID string) ([]models.Course, error) {
	var courses []models.Course
	if err := db.Where("teacher_id = ?", teacherID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCoursesByOrganization returns every course owned by the organization.
func GetCoursesByOrganization(db *gorm.DB, organizationID string) ([]models.Course, error) {
	var courses []models.Course
	if err := db.Where("organization_id = ?", organizationID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetEnrolledCourses returns the courses a student is enrolled in.
func GetEnrolledCourses(db *gorm.DB, studentID string) ([]models.Course, error) {
	var courses []models.Course
	err := db.Model(&models.Course{}).
		Select("courses.*").
		Joins("JOIN course_enrollments ON course_enrollments.course_id = courses.id").
		Where("course_enrollments.student_id = ?", studentID).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
