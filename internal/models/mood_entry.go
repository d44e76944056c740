package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MoodEntry is one user's mood record for a single calendar day.
// The (user_id, entry_date) pair is unique; submitting again for the same
// date updates the existing row via an atomic upsert.
type MoodEntry struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_mood_entries_user_date" json:"user_id"`
	EntryDate    time.Time      `gorm:"type:date;not null;uniqueIndex:idx_mood_entries_user_date" json:"entry_date"`
	MoodID       string         `gorm:"size:50;not null;index" json:"mood_id"`
	Note         string         `gorm:"type:text" json:"note"`
	Intensity    int            `gorm:"not null;default:3" json:"intensity"`
	VoiceNoteURL string         `gorm:"type:text" json:"voice_note_url"`
	PhotoURL     string         `gorm:"type:text" json:"photo_url"`
	Weather      datatypes.JSON `gorm:"type:jsonb" json:"weather"`
	Location     datatypes.JSON `gorm:"type:jsonb" json:"location"`
	Tags         datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	ActivityData datatypes.JSON `gorm:"type:jsonb" json:"activity_data"`
	SleepData    datatypes.JSON `gorm:"type:jsonb" json:"sleep_data"`
	IsPrivate    bool           `gorm:"default:true" json:"is_private"`
	RecordedAt   time.Time      `gorm:"not null" json:"recorded_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// CustomMood is a per-user extension of the static mood catalog.
// Deletes are hard deletes: a soft-delete tombstone would keep holding the
// (user_id, mood_id) unique index and block re-creating the same label.
type CustomMood struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_custom_moods_user_mood" json:"user_id"`
	MoodID     string    `gorm:"size:50;not null;uniqueIndex:idx_custom_moods_user_mood" json:"mood_id"`
	Emoji      string    `gorm:"size:10" json:"emoji"`
	Label      string    `gorm:"size:50;not null" json:"label"`
	Color      string    `gorm:"type:text" json:"color"`
	Particles  string    `gorm:"size:20" json:"particles"`
	Intensity  int       `gorm:"default:3" json:"intensity"`
	Category   string    `gorm:"size:20;default:'neutral'" json:"category"`
	UsageCount int       `gorm:"default:0" json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
