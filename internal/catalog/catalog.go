package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mood categories.
const (
	CategoryPositive = "positive"
	CategoryNeutral  = "neutral"
	CategoryNegative = "negative"
)

// Criteria keys understood by the achievement evaluator.
const (
	CriteriaTotalEntries     = "total_entries"
	CriteriaCurrentStreak    = "streak_days"
	CriteriaDistinctMoods    = "distinct_moods"
	CriteriaMoodCount        = "mood_count" // paired with the definition's MoodID
	CriteriaFriends          = "friends"
	CriteriaMeditations      = "meditation_sessions"
	CriteriaVoiceNotes       = "voice_notes"
	CriteriaPhotos           = "photos"
	CriteriaAllMoodsUsed     = "all_moods_used"
	CriteriaDistinctDays     = "distinct_days"
	CriteriaDistinctWeather  = "distinct_weather"
	CriteriaLateNightEntries = "late_night_entries"
)

// Mood is a static catalog entry describing a selectable mood.
type Mood struct {
	ID        string `json:"id"`
	Emoji     string `json:"emoji"`
	Label     string `json:"label"`
	Color     string `json:"color"`
	Particles string `json:"particles"`
	Intensity int    `json:"intensity"`
	Category  string `json:"category"`
}

// Achievement is a static definition with its unlock criteria.
// Criteria maps a criteria key to a numeric threshold; all present keys must
// be satisfied (in practice each achievement carries exactly one).
type Achievement struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Category    string         `json:"category"`
	Rarity      string         `json:"rarity"`
	Criteria    map[string]int `json:"criteria"`
	MoodID      string         `json:"mood_id,omitempty"`
}

// Catalog holds the immutable reference tables. Loaded once at startup and
// passed by reference into the services; never mutated afterwards.
type Catalog struct {
	moods        map[string]Mood
	moodOrder    []string
	achievements []Achievement
}

type catalogFile struct {
	Moods        []Mood        `json:"moods"`
	Achievements []Achievement `json:"achievements"`
}

// Default returns the catalog built from the compiled-in reference data.
func Default() *Catalog {
	return build(defaultMoods, defaultAchievements)
}

// LoadFromFile reads a JSON catalog override. Missing sections fall back to
// the compiled-in defaults.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	moods := file.Moods
	if len(moods) == 0 {
		moods = defaultMoods
	}
	achievements := file.Achievements
	if len(achievements) == 0 {
		achievements = defaultAchievements
	}
	return build(moods, achievements), nil
}

func build(moods []Mood, achievements []Achievement) *Catalog {
	c := &Catalog{
		moods:        make(map[string]Mood, len(moods)),
		moodOrder:    make([]string, 0, len(moods)),
		achievements: achievements,
	}
	for _, m := range moods {
		if _, ok := c.moods[m.ID]; ok {
			continue
		}
		c.moods[m.ID] = m
		c.moodOrder = append(c.moodOrder, m.ID)
	}
	return c
}

// Mood looks up a catalog mood by id.
func (c *Catalog) Mood(id string) (Mood, bool) {
	m, ok := c.moods[id]
	return m, ok
}

// Moods returns all moods in definition order.
func (c *Catalog) Moods() []Mood {
	result := make([]Mood, 0, len(c.moodOrder))
	for _, id := range c.moodOrder {
		result = append(result, c.moods[id])
	}
	return result
}

// Size returns the number of catalog moods.
func (c *Catalog) Size() int { return len(c.moodOrder) }

// Achievements returns all achievement definitions in definition order.
func (c *Catalog) Achievements() []Achievement {
	return c.achievements
}

// Achievement looks up a definition by id.
func (c *Catalog) Achievement(id string) (Achievement, bool) {
	for _, a := range c.achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
