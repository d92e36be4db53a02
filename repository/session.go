package repository

import (
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// CreateSession stores a new server-side session row.
func CreateSession(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

// GetSession fetches a live session; an expired row reads as not found.
func GetSession(db *gorm.DB, sid string) (*models.Session, error) {
	var session models.Session
	err := db.Where("sid = ? AND expire > ?", sid, time.Now()).First(&session).Error
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

// DeleteSession removes a session row. Deleting a missing row is not an
// error.
func DeleteSession(db *gorm.DB, sid string) error {
	return db.Where("sid = ?", sid).Delete(&models.Session{}).Error
}

// DeleteExpiredSessions purges every session past its expiry, returning the
// purged row count.
func DeleteExpiredSessions(db *gorm.DB) (int64, error) {
	result := db.Where("expire <= ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
