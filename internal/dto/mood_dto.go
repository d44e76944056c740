package dto

import (
	"time"

	"github.com/moodverse/moodverse-backend/internal/catalog"
)

// WeatherContext is the optional weather snapshot attached to an entry.
type WeatherContext struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature,omitempty"`
	Humidity    float64 `json:"humidity,omitempty"`
}

// LocationContext is the optional geolocation attached to an entry.
type LocationContext struct {
	City        string             `json:"city,omitempty"`
	Country     string             `json:"country,omitempty"`
	Coordinates map[string]float64 `json:"coordinates,omitempty"`
}

// CreateMoodRequest records (or re-records) the mood for one calendar day.
type CreateMoodRequest struct {
	Date         string             `json:"date"` // YYYY-MM-DD
	MoodID       string             `json:"mood_id"`
	Note         string             `json:"note"`
	Intensity    *int               `json:"intensity,omitempty"`
	Weather      *WeatherContext    `json:"weather,omitempty"`
	Location     *LocationContext   `json:"location,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	ActivityData map[string]float64 `json:"activity_data,omitempty"`
	SleepData    map[string]any     `json:"sleep_data,omitempty"`
	VoiceNoteURL string             `json:"voice_note_url,omitempty"`
	PhotoURL     string             `json:"photo_url,omitempty"`
	IsPrivate    *bool              `json:"is_private,omitempty"`
	Timestamp    *time.Time         `json:"timestamp,omitempty"`
}

// UpdateMoodRequest patches an existing entry by id.
type UpdateMoodRequest struct {
	MoodID       *string  `json:"mood_id,omitempty"`
	Note         *string  `json:"note,omitempty"`
	Intensity    *int     `json:"intensity,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	VoiceNoteURL *string  `json:"voice_note_url,omitempty"`
	PhotoURL     *string  `json:"photo_url,omitempty"`
	IsPrivate    *bool    `json:"is_private,omitempty"`
}

type CreateCustomMoodRequest struct {
	Label     string `json:"label"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color,omitempty"`
	Particles string `json:"particles,omitempty"`
	Intensity int    `json:"intensity,omitempty"`
	Category  string `json:"category,omitempty"`
}

type CreateMeditationSessionRequest struct {
	Technique            string  `json:"technique"`
	Duration             int     `json:"duration"`
	Completed            bool    `json:"completed"`
	CompletionPercentage float64 `json:"completion_percentage"`
	MoodBefore           string  `json:"mood_before,omitempty"`
	MoodAfter            string  `json:"mood_after,omitempty"`
	Notes                string  `json:"notes,omitempty"`
}

// TagCorrelation is the per-tag aggregate in the stats report.
type TagCorrelation struct {
	Count        int     `json:"count"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// StreakResult is recomputed on demand from the full entry history.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Breaks  int `json:"breaks"`
}

// StatsReport is the full derived-analytics payload.
type StatsReport struct {
	TotalEntries         int                       `json:"total_entries"`
	MoodCounts           map[string]int            `json:"mood_counts"`
	MostCommonMood       string                    `json:"most_common_mood"`
	CategoryDistribution map[string]int            `json:"category_distribution"`
	WeatherCorrelation   map[string]map[string]int `json:"weather_correlation"`
	ActivityCorrelation  map[string]TagCorrelation `json:"activity_correlation"`
	CurrentStreak        int                       `json:"current_streak"`
	LongestStreak        int                       `json:"longest_streak"`
	StreakBreaks         int                       `json:"streak_breaks"`
	WeeklyAvgIntensity   float64                   `json:"weekly_avg_intensity"`
	MonthlyAvgIntensity  float64                   `json:"monthly_avg_intensity"`
	Insights             []string                  `json:"insights"`
	Recommendations      []string                  `json:"recommendations"`
}

// WeeklyReport wraps the trailing-7-day stats for the report endpoint.
type WeeklyReport struct {
	UserID          string      `json:"user_id"`
	WeekStart       string      `json:"week_start"`
	WeekEnd         string      `json:"week_end"`
	Stats           StatsReport `json:"stats"`
	Insights        []string    `json:"insights"`
	Recommendations []string    `json:"recommendations"`
}

// AchievementStatus pairs a definition with the caller's unlock state.
type AchievementStatus struct {
	catalog.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
