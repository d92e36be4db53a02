package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment statuses
const (
	AssignmentDraft     = "draft"
	AssignmentPublished = "published"
	AssignmentClosed    = "closed"
)

type Assignment struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	CourseID    string     `gorm:"index" json:"courseId"`
	UnitID      string     `gorm:"index" json:"unitId"`
	TeacherID   string     `gorm:"index" json:"teacherId"`
	DueDate     *time.Time `json:"dueDate"`
	TotalPoints int        `gorm:"default:100" json:"totalPoints"`
	Status      string     `gorm:"default:'draft'" json:"status"`
	XpReward    int        `gorm:"default:20" json:"xpReward"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ValidAssignmentStatus reports whether status is a known assignment status.
func ValidAssignmentStatus(status string) bool {
	switch status {
	case AssignmentDraft, AssignmentPublished, AssignmentClosed:
		return true
	}
	return false
}
