package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeditationSession is one guided session run by a user. Completed sessions
// count toward the zen_master achievement.
type MeditationSession struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Technique            string         `gorm:"size:50;not null" json:"technique"`
	Duration             int            `gorm:"not null" json:"duration"`
	Completed            bool           `gorm:"default:false" json:"completed"`
	CompletionPercentage float64        `gorm:"default:0" json:"completion_percentage"`
	MoodBefore           string         `gorm:"size:50" json:"mood_before"`
	MoodAfter            string         `gorm:"size:50" json:"mood_after"`
	Notes                string         `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}
