package logging

import (
	"log/slog"
	"time"

	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

// logRetentionDays is how long persisted error logs are kept.
const logRetentionDays = 30

// StartCleanup prunes expired system_logs rows once a day until done is
// closed. Journal data is never touched; only the error log table ages out.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
