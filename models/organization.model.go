package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription statuses
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionTrial    = "trial"
	SubscriptionCanceled = "canceled"
)

type Organization struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Domain             string    `json:"domain"`
	Logo               string    `json:"logo"`
	SubscriptionStatus string    `gorm:"default:'trial'" json:"subscriptionStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
