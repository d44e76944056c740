package services

import (
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
)

// AchievementInputs is everything the evaluator needs, gathered up front so
// evaluation itself is pure.
type AchievementInputs struct {
	Entries         []EntryFacts
	Streak          dto.StreakResult
	Unlocked        map[string]bool
	FriendCount     int
	MeditationCount int
	CustomMoodCount int
	KnownMoodCount  int
}

// entryTallies are the per-user counts criteria are checked against.
type entryTallies struct {
	total           int
	distinctMoods   int
	moodCounts      map[string]int
	voiceNotes      int
	photos          int
	distinctDays    int
	distinctWeather int
	lateNight       int
}

func tally(entries []EntryFacts) entryTallies {
	t := entryTallies{moodCounts: make(map[string]int)}
	moods := make(map[string]struct{})
	days := make(map[string]struct{})
	weather := make(map[string]struct{})

	for _, e := range entries {
		t.total++
		moods[e.MoodID] = struct{}{}
		t.moodCounts[e.MoodID]++
		days[e.Date.UTC().Format("2006-01-02")] = struct{}{}
		if e.HasVoiceNote {
			t.voiceNotes++
		}
		if e.HasPhoto {
			t.photos++
		}
		if e.Weather != "" {
			weather[e.Weather] = struct{}{}
		}
		// Late-night window is 23:00 through 02:00, wrapping midnight.
		if hour := e.RecordedAt.UTC().Hour(); hour >= 23 || hour <= 2 {
			t.lateNight++
		}
	}

	t.distinctMoods = len(moods)
	t.distinctDays = len(days)
	t.distinctWeather = len(weather)
	return t
}

// EvaluateAchievements returns the ids of achievements that are newly
// satisfied: every definition not yet unlocked whose criteria all hold.
// Output order follows the definition order, so results are deterministic.
func EvaluateAchievements(defs []catalog.Achievement, in AchievementInputs) []string {
	counts := tally(in.Entries)

	var newly []string
	for _, def := range defs {
		if in.Unlocked[def.ID] {
			continue
		}
		if criteriaMet(def, counts, in) {
			newly = append(newly, def.ID)
		}
	}
	return newly
}

func criteriaMet(def catalog.Achievement, counts entryTallies, in AchievementInputs) bool {
	if len(def.Criteria) == 0 {
		return false
	}
	for key, threshold := range def.Criteria {
		if !criterionMet(key, threshold, def, counts, in) {
			return false
		}
	}
	return true
}

func criterionMet(key string, threshold int, def catalog.Achievement, counts entryTallies, in AchievementInputs) bool {
	switch key {
	case catalog.CriteriaTotalEntries:
		return counts.total >= threshold
	case catalog.CriteriaCurrentStreak:
		return in.Streak.Current >= threshold
	case catalog.CriteriaDistinctMoods:
		return counts.distinctMoods >= threshold
	case catalog.CriteriaMoodCount:
		return counts.moodCounts[def.MoodID] >= threshold
	case catalog.CriteriaFriends:
		return in.FriendCount >= threshold
	case catalog.CriteriaMeditations:
		return in.MeditationCount >= threshold
	case catalog.CriteriaVoiceNotes:
		return counts.voiceNotes >= threshold
	case catalog.CriteriaPhotos:
		return counts.photos >= threshold
	case catalog.CriteriaAllMoodsUsed:
		required := in.KnownMoodCount
		if required > 16 {
			required = 16
		}
		return required > 0 && counts.distinctMoods >= required
	case catalog.CriteriaDistinctDays:
		return counts.distinctDays >= threshold
	case catalog.CriteriaDistinctWeather:
		return counts.distinctWeather >= threshold
	case catalog.CriteriaLateNightEntries:
		return counts.lateNight >= threshold
	default:
		return false
	}
}
