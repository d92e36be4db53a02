package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseUnit struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	CourseID    string    `gorm:"index" json:"courseId"`
	OrderIndex  int       `gorm:"default:0" json:"orderIndex"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u *CourseUnit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
