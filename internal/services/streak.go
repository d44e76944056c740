package services

import (
	"sort"
	"time"

	"github.com/moodverse/moodverse-backend/internal/dto"
)

// streakLookbackDays bounds how far back the calculator walks. Runs longer
// than this are reported as exactly this length.
const streakLookbackDays = 365

// CalculateStreak computes current/longest streaks and break count from a
// user's entry dates. Duplicates are collapsed; times are reduced to UTC
// calendar days. The current streak survives a missing entry for today as
// long as yesterday is present.
func CalculateStreak(dates []time.Time, today time.Time) dto.StreakResult {
	days := distinctDays(dates, today)
	if len(days) == 0 {
		return dto.StreakResult{}
	}

	// Newest first.
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	anchor := toDay(today)
	result := dto.StreakResult{}

	// Current streak: walk backward from today (or yesterday, when today
	// has not been logged yet).
	if days[0].Equal(anchor) || days[0].Equal(anchor.AddDate(0, 0, -1)) {
		expected := days[0]
		for _, d := range days {
			if !d.Equal(expected) {
				break
			}
			result.Current++
			expected = expected.AddDate(0, 0, -1)
		}
	}

	// Longest run and breaks over the whole (capped) history.
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			run++
			continue
		}
		if run > result.Longest {
			result.Longest = run
		}
		result.Breaks++
		run = 1
	}
	if run > result.Longest {
		result.Longest = run
	}

	if result.Current > streakLookbackDays {
		result.Current = streakLookbackDays
	}
	if result.Longest > streakLookbackDays {
		result.Longest = streakLookbackDays
	}
	return result
}

// distinctDays collapses timestamps to unique UTC calendar days, dropping
// anything outside the lookback window or in the future.
func distinctDays(dates []time.Time, today time.Time) []time.Time {
	anchor := toDay(today)
	oldest := anchor.AddDate(0, 0, -streakLookbackDays)

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, t := range dates {
		d := toDay(t)
		if d.Before(oldest) || d.After(anchor) {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}

func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
