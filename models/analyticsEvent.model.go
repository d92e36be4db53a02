package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsEvent is an append-only log row. Events are never updated or
// deleted once written.
type AnalyticsEvent struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	UserID         string         `gorm:"index" json:"userId"`
	OrganizationID string         `gorm:"index" json:"organizationId"`
	EventType      string         `gorm:"not null" json:"eventType"`
	EventData      datatypes.JSON `json:"eventData"`
	Timestamp      time.Time      `gorm:"autoCreateTime" json:"timestamp"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
