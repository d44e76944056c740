package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Friendship statuses.
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
)

type Friendship struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FriendID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"friend_id"`
	Status    string         `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
