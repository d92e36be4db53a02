package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// CreateLesson inserts and returns a new lesson.
func CreateLesson(db *gorm.DB, lesson *models.Lesson) (*models.Lesson, error) {
	if err := db.Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// GetLessonsByUnit returns the lessons of a unit in display order.
func GetLessonsByUnit(db *gorm.DB, unitID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := db.Where("unit_id = ?", unitID).Order("order_index").Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}
