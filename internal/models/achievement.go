package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementUnlock records that a user unlocked an achievement.
// Append-only; the composite unique index is what makes the evaluator's
// insert-if-absent idempotent under concurrent triggers.
type AchievementUnlock struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_achievement_unlocks_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"size:50;not null;uniqueIndex:idx_achievement_unlocks_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}
