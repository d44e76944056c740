package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrisisDetectorMatches(t *testing.T) {
	d := NewCrisisDetector(&fakeNotificationSink{})

	tests := []struct {
		name string
		note string
		want bool
	}{
		{"direct phrase", "I want to die", true},
		{"embedded phrase", "sometimes everything feels pointless to me", true},
		{"case insensitive", "I feel HOPELESS today", true},
		{"apostrophe phrase", "I can't go on like this", true},
		{"clean note", "Had a lovely walk in the park today", false},
		{"empty note", "", false},
		{"substring not a word", "the antelopes were hopelessly cute", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Matches(tt.note))
		})
	}
}

func TestCrisisDetectorCheckCreatesUrgentNotification(t *testing.T) {
	sink := &fakeNotificationSink{}
	d := NewCrisisDetector(sink)
	userID := uuid.New()

	flagged := d.Check(userID, "I want to die")
	assert.True(t, flagged)
	require.Len(t, sink.created, 1)
	assert.Equal(t, models.NotificationTypeCrisisSupport, sink.created[0].Type)
	assert.Equal(t, models.NotificationPriorityUrgent, sink.created[0].Priority)
	assert.Equal(t, userID, sink.created[0].UserID)
}

func TestCrisisDetectorCheckCleanNote(t *testing.T) {
	sink := &fakeNotificationSink{}
	d := NewCrisisDetector(sink)

	flagged := d.Check(uuid.New(), "Great day, feeling grateful")
	assert.False(t, flagged)
	assert.Empty(t, sink.created)
}
