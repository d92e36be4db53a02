package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// No uniqueness constraint on (course_id, student_id): enrolling twice
// creates two rows. Callers that need de-duplication must check first.
type CourseEnrollment struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	CourseID             string    `gorm:"index" json:"courseId"`
	StudentID            string    `gorm:"index" json:"studentId"`
	EnrolledAt           time.Time `gorm:"autoCreateTime" json:"enrolledAt"`
	CompletionPercentage int       `gorm:"default:0" json:"completionPercentage"`
	IsActive             bool      `gorm:"default:true" json:"isActive"`
}

func (e *CourseEnrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
