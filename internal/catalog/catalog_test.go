package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Equal(t, 16, cat.Size())
	assert.Len(t, cat.Achievements(), 13)

	// Definition order is preserved.
	moods := cat.Moods()
	require.NotEmpty(t, moods)
	assert.Equal(t, "euphoric", moods[0].ID)

	happy, ok := cat.Mood("happy")
	require.True(t, ok)
	assert.Equal(t, "Happy", happy.Label)
	assert.Equal(t, "😊", happy.Emoji)
	assert.Equal(t, 4, happy.Intensity)
	assert.Equal(t, CategoryPositive, happy.Category)

	_, ok = cat.Mood("nope")
	assert.False(t, ok)
}

func TestDefaultCatalogIntegrity(t *testing.T) {
	cat := Default()

	for _, m := range cat.Moods() {
		assert.NotEmpty(t, m.Label, "mood %s has no label", m.ID)
		assert.GreaterOrEqual(t, m.Intensity, 1, "mood %s", m.ID)
		assert.LessOrEqual(t, m.Intensity, 5, "mood %s", m.ID)
		assert.Contains(t, []string{CategoryPositive, CategoryNeutral, CategoryNegative}, m.Category, "mood %s", m.ID)
	}

	for _, a := range cat.Achievements() {
		assert.NotEmpty(t, a.Criteria, "achievement %s has no criteria", a.ID)
		if _, ok := a.Criteria[CriteriaMoodCount]; ok {
			_, found := cat.Mood(a.MoodID)
			assert.True(t, found, "achievement %s references unknown mood %q", a.ID, a.MoodID)
		}
	}
}

func TestAchievementLookup(t *testing.T) {
	cat := Default()

	def, ok := cat.Achievement("week_streak")
	require.True(t, ok)
	assert.Equal(t, 7, def.Criteria[CriteriaCurrentStreak])

	_, ok = cat.Achievement("nope")
	assert.False(t, ok)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `{
		"moods": [
			{"id": "sparkly", "emoji": "✨", "label": "Sparkly", "intensity": 5, "category": "positive"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cat, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Size())
	m, ok := cat.Mood("sparkly")
	require.True(t, ok)
	assert.Equal(t, "Sparkly", m.Label)

	// Achievements fall back to the compiled-in defaults.
	assert.Len(t, cat.Achievements(), 13)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}
