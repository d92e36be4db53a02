package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleParent  = "parent"
)

type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageUrl string    `json:"profileImageUrl"`
	OrganizationID  string    `gorm:"index" json:"organizationId"`
	Role            string    `gorm:"default:'student'" json:"role"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
	XpPoints        int       `gorm:"default:0" json:"xpPoints"`
	CurrentStreak   int       `gorm:"default:0" json:"currentStreak"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ValidRole reports whether role is one of the four supported roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleParent:
		return true
	}
	return false
}
