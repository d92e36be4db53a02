package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per (student, lesson); repeated updates upsert into the same row.
type StudentProgress struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	StudentID   string     `gorm:"uniqueIndex:idx_student_lesson" json:"studentId"`
	LessonID    string     `gorm:"uniqueIndex:idx_student_lesson" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	TimeSpent   int        `gorm:"default:0" json:"timeSpent"` // in seconds
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

func (p *StudentProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
