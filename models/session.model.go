package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is a server-side session row. The session id travels in a signed
// cookie; the identity claims stay here.
type Session struct {
	Sid       string         `gorm:"primaryKey" json:"sid"`
	Sess      datatypes.JSON `gorm:"not null" json:"sess"`
	Expire    time.Time      `gorm:"index" json:"expire"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}
