package services

import (
	"encoding/json"
	"time"

	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
)

// maxAggregationEntries caps how much history the derivation engine loads
// per request. Older entries beyond the cap do not influence results.
const maxAggregationEntries = 1000

// MoodResolver resolves a mood id against the static catalog with the user's
// custom moods as an overlay. Custom moods are consulted only when the id is
// absent from the catalog.
type MoodResolver struct {
	cat    *catalog.Catalog
	custom map[string]models.CustomMood
}

func NewMoodResolver(cat *catalog.Catalog, customs []models.CustomMood) *MoodResolver {
	overlay := make(map[string]models.CustomMood, len(customs))
	for _, cm := range customs {
		overlay[cm.MoodID] = cm
	}
	return &MoodResolver{cat: cat, custom: overlay}
}

// Resolve returns display label, category and default intensity for a mood id.
func (r *MoodResolver) Resolve(moodID string) (label, category string, intensity int, ok bool) {
	if m, found := r.cat.Mood(moodID); found {
		return m.Label, m.Category, m.Intensity, true
	}
	if cm, found := r.custom[moodID]; found {
		return cm.Label, cm.Category, cm.Intensity, true
	}
	return "", "", 0, false
}

// Emoji returns the display emoji for a mood id, empty when unknown.
func (r *MoodResolver) Emoji(moodID string) string {
	if m, found := r.cat.Mood(moodID); found {
		return m.Emoji
	}
	if cm, found := r.custom[moodID]; found {
		return cm.Emoji
	}
	return ""
}

// KnownMoodCount is the catalog size plus the user's custom moods.
func (r *MoodResolver) KnownMoodCount() int {
	return r.cat.Size() + len(r.custom)
}

// EntryFacts is the flattened view of a mood entry the derivation engine
// works on: catalog attributes resolved, jsonb context decoded.
type EntryFacts struct {
	MoodID       string
	Label        string
	Category     string
	Intensity    int
	Date         time.Time
	RecordedAt   time.Time
	Weather      string
	Tags         []string
	HasVoiceNote bool
	HasPhoto     bool
}

// BuildFacts flattens entries for the insight generator and stats aggregator,
// preserving input order. Unknown mood ids degrade to a neutral category
// rather than failing.
func BuildFacts(entries []models.MoodEntry, resolver *MoodResolver) []EntryFacts {
	facts := make([]EntryFacts, 0, len(entries))
	for _, e := range entries {
		f := EntryFacts{
			MoodID:       e.MoodID,
			Label:        e.MoodID,
			Category:     catalog.CategoryNeutral,
			Intensity:    e.Intensity,
			Date:         e.EntryDate,
			RecordedAt:   e.RecordedAt,
			HasVoiceNote: e.VoiceNoteURL != "",
			HasPhoto:     e.PhotoURL != "",
		}
		if label, category, defaultIntensity, ok := resolver.Resolve(e.MoodID); ok {
			f.Label = label
			f.Category = category
			if f.Intensity == 0 {
				f.Intensity = defaultIntensity
			}
		}
		if len(e.Weather) > 0 {
			var w dto.WeatherContext
			if err := json.Unmarshal(e.Weather, &w); err == nil {
				f.Weather = w.Condition
			}
		}
		if len(e.Tags) > 0 {
			var tags []string
			if err := json.Unmarshal(e.Tags, &tags); err == nil {
				f.Tags = tags
			}
		}
		facts = append(facts, f)
	}
	return facts
}

func (f EntryFacts) hasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
