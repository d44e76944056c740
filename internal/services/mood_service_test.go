package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// A soft-deleted entry still holds the (user_id, entry_date) index slot, so
// the upsert must overwrite deleted_at or a re-logged day lands on the
// tombstone and never becomes visible again.
func TestEntryUpsertResurrectsSoftDeletedDay(t *testing.T) {
	c := entryUpsertClause()

	require.Len(t, c.Columns, 2)
	assert.Equal(t, "user_id", c.Columns[0].Name)
	assert.Equal(t, "entry_date", c.Columns[1].Name)

	assigned := make(map[string]bool, len(c.DoUpdates))
	for _, a := range c.DoUpdates {
		assigned[a.Column.Name] = true
	}
	assert.True(t, assigned["deleted_at"], "upsert must clear the soft-delete tombstone")
	for _, col := range []string{"mood_id", "note", "intensity", "recorded_at", "updated_at"} {
		assert.True(t, assigned[col], "upsert must replace %s", col)
	}
}

func TestRenderCSV(t *testing.T) {
	userID := uuid.New()
	entries := []models.MoodEntry{
		{
			UserID:     userID,
			EntryDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			MoodID:     "grateful",
			Note:       "Thankful for a quiet morning, \"coffee\" included",
			Intensity:  4,
			Tags:       datatypes.JSON(`["morning","coffee"]`),
			Weather:    datatypes.JSON(`{"condition":"sunny","temperature":18}`),
			RecordedAt: time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC),
		},
		{
			UserID:     userID,
			EntryDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			MoodID:     "tired",
			Note:       "Long day",
			Intensity:  2,
			RecordedAt: time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC),
		},
	}

	out, err := renderCSV(entries, NewMoodResolver(catalog.Default(), nil))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Mood", "Emoji", "Intensity", "Note", "Tags", "Weather", "Timestamp"}, records[0])

	first := records[1]
	assert.Equal(t, "2026-03-02", first[0])
	assert.Equal(t, "Grateful", first[1])
	assert.Equal(t, "4", first[3])
	assert.Equal(t, "Thankful for a quiet morning, \"coffee\" included", first[4])
	assert.Equal(t, "morning;coffee", first[5])
	assert.Equal(t, "sunny", first[6])
	assert.Equal(t, "2026-03-02T08:15:00Z", first[7])

	second := records[2]
	assert.Equal(t, "2026-03-01", second[0])
	assert.Equal(t, "Tired", second[1])
	assert.Equal(t, "", second[5])
	assert.Equal(t, "", second[6])
}

func TestRenderCSVCustomMood(t *testing.T) {
	entries := []models.MoodEntry{
		{
			EntryDate:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			MoodID:     "cozy",
			Intensity:  3,
			RecordedAt: time.Date(2026, 3, 5, 19, 0, 0, 0, time.UTC),
		},
	}
	customs := []models.CustomMood{
		{MoodID: "cozy", Label: "Cozy", Emoji: "🧣", Category: catalog.CategoryPositive, Intensity: 3},
	}

	out, err := renderCSV(entries, NewMoodResolver(catalog.Default(), customs))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Cozy", records[1][1])
	assert.Equal(t, "🧣", records[1][2])
}

func TestBuildFactsDecodesContext(t *testing.T) {
	entries := []models.MoodEntry{
		{
			MoodID:       "happy",
			Intensity:    0,
			EntryDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Weather:      datatypes.JSON(`{"condition":"rainy"}`),
			Tags:         datatypes.JSON(`["work"]`),
			VoiceNoteURL: "https://cdn.example.com/v/1.m4a",
		},
		{MoodID: "mystery-mood", Intensity: 2},
	}

	facts := BuildFacts(entries, NewMoodResolver(catalog.Default(), nil))
	require.Len(t, facts, 2)

	assert.Equal(t, "Happy", facts[0].Label)
	assert.Equal(t, catalog.CategoryPositive, facts[0].Category)
	// Zero intensity falls back to the catalog default.
	assert.NotZero(t, facts[0].Intensity)
	assert.Equal(t, "rainy", facts[0].Weather)
	assert.Equal(t, []string{"work"}, facts[0].Tags)
	assert.True(t, facts[0].HasVoiceNote)
	assert.False(t, facts[0].HasPhoto)

	// Unknown moods degrade to neutral instead of failing.
	assert.Equal(t, "mystery-mood", facts[1].Label)
	assert.Equal(t, catalog.CategoryNeutral, facts[1].Category)
	assert.Equal(t, 2, facts[1].Intensity)
}
