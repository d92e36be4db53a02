package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	Subject        string    `json:"subject"`
	OrganizationID string    `gorm:"index" json:"organizationId"`
	TeacherID      string    `gorm:"index" json:"teacherId"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (co *Course) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}
	return nil
}
