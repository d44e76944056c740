package services

import (
	"reflect"
	"testing"

	"github.com/moodverse/moodverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMoodIDFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Cozy", "cozy"},
		{"Sunday Blues", "sunday_blues"},
		{"  Post-Workout Glow  ", "post_workout_glow"},
		{"100% Done", "100_done"},
		{"???", ""},
		{"Déjà vu", "d_j_vu"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, moodIDFromLabel(tt.label))
		})
	}
}

// Deleting a custom mood must free its (user_id, mood_id) index slot so the
// same label can be created again. A gorm.DeletedAt field would turn deletes
// into tombstones that keep the slot occupied and make every re-creation of
// that label fail on the unique index.
func TestCustomMoodDeletesArePermanent(t *testing.T) {
	typ := reflect.TypeOf(models.CustomMood{})
	deletedAt := reflect.TypeOf(gorm.DeletedAt{})

	for i := 0; i < typ.NumField(); i++ {
		assert.NotEqual(t, deletedAt, typ.Field(i).Type,
			"CustomMood must not soft-delete; field %s", typ.Field(i).Name)
	}
}
