package utils

import (
	"log"

	"lms/repository"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeSessionScheduler sets up the expired-session cleanup scheduler
func InitializeSessionScheduler(db *gorm.DB) {
	log.Println("[SESSION-CLEANUP] Initializing session cleanup scheduler...")

	c := cron.New()

	// Run daily at 3 AM to purge expired sessions
	c.AddFunc("0 3 * * *", func() {
		PurgeExpiredSessions(db)
	})

	c.Start()
	log.Println("[SESSION-CLEANUP] Session cleanup scheduler started - runs daily at 3 AM")
}

// PurgeExpiredSessions deletes every session row past its expiry
func PurgeExpiredSessions(db *gorm.DB) {
	purged, err := repository.DeleteExpiredSessions(db)
	if err != nil {
		log.Printf("[SESSION-CLEANUP] Error purging expired sessions: %v", err)
		return
	}
	log.Printf("[SESSION-CLEANUP] Purged %d expired sessions", purged)
}
