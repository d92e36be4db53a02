package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// CreateCourseUnit inserts and returns a new course unit.
func CreateCourseUnit(db *gorm.DB, unit *models.CourseUnit) (*models.CourseUnit, error) {
	if err := db.Create(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// GetCourseUnits returns the units of a course in display order.
func GetCourseUnits(db *gorm.DB, courseID string) ([]models.CourseUnit, error) {
	var units []models.CourseUnit
	err := db.Where("course_id = ?", courseID).Order("order_index").Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// GetCourseUnitInOrganization fetches a unit by id, accepting it only when
// its parent course belongs to the organization.
func GetCourseUnitInOrganization(db *gorm.DB, id, organizationID string) (*models.CourseUnit, error) {
	var unit models.CourseUnit
	err := db.Model(&models.CourseUnit{}).
		Select("course_units.*").
		Joins("JOIN courses ON courses.id = course_units.course_id").
		Where("course_units.id = ? AND courses.organization_id = ?", id, organizationID).
		First(&unit).Error
	if err != nil {
		return nil, translate(err)
	}
	return &unit, nil
}
