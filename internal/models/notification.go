package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types and priorities.
const (
	NotificationTypeAchievement   = "achievement"
	NotificationTypeCrisisSupport = "crisis_support"

	NotificationPriorityNormal = "normal"
	NotificationPriorityUrgent = "urgent"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"size:30;not null;index" json:"type"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Priority  string    `gorm:"size:10;default:'normal'" json:"priority"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
