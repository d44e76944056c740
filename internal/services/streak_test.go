package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = day(s)
	}
	return out
}

func TestCalculateStreakEmpty(t *testing.T) {
	result := CalculateStreak(nil, day("2024-01-07"))
	assert.Zero(t, result.Current)
	assert.Zero(t, result.Longest)
	assert.Zero(t, result.Breaks)
}

func TestCalculateStreakSevenConsecutiveDays(t *testing.T) {
	dates := days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07")

	result := CalculateStreak(dates, day("2024-01-07"))
	assert.Equal(t, 7, result.Current)
	assert.Equal(t, 7, result.Longest)
	assert.Equal(t, 0, result.Breaks)
}

func TestCalculateStreakYesterdayGrace(t *testing.T) {
	// No entry today yet; streak ending yesterday must not reset.
	dates := days("2024-01-04", "2024-01-05", "2024-01-06")

	result := CalculateStreak(dates, day("2024-01-07"))
	assert.Equal(t, 3, result.Current)
	assert.Equal(t, 3, result.Longest)
}

func TestCalculateStreakTwoDayGapResetsCurrent(t *testing.T) {
	dates := days("2024-01-03", "2024-01-04", "2024-01-05")

	result := CalculateStreak(dates, day("2024-01-07"))
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 3, result.Longest)
}

func TestCalculateStreakGapsAndRuns(t *testing.T) {
	// Runs: 5 days, 2 days, 1 day (today). Two gaps.
	dates := days(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-08", "2024-01-09",
		"2024-01-12",
	)

	result := CalculateStreak(dates, day("2024-01-12"))
	assert.Equal(t, 1, result.Current)
	assert.Equal(t, 5, result.Longest)
	assert.Equal(t, 2, result.Breaks)
}

func TestCalculateStreakDuplicateTimestampsCollapse(t *testing.T) {
	dates := []time.Time{
		day("2024-01-06").Add(8 * time.Hour),
		day("2024-01-06").Add(21 * time.Hour),
		day("2024-01-07").Add(3 * time.Hour),
	}

	result := CalculateStreak(dates, day("2024-01-07"))
	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 2, result.Longest)
}

func TestCalculateStreakLongestNeverBelowCurrent(t *testing.T) {
	cases := [][]string{
		{"2024-01-07"},
		{"2024-01-06", "2024-01-07"},
		{"2024-01-01", "2024-01-03", "2024-01-06", "2024-01-07"},
		{"2023-12-25", "2024-01-05", "2024-01-06", "2024-01-07"},
	}
	for _, ss := range cases {
		result := CalculateStreak(days(ss...), day("2024-01-07"))
		assert.GreaterOrEqual(t, result.Longest, result.Current, "dates: %v", ss)
		assert.LessOrEqual(t, result.Longest, 365)
		assert.LessOrEqual(t, result.Current, 365)
	}
}

func TestCalculateStreakLookbackCap(t *testing.T) {
	today := day("2024-12-31")
	var dates []time.Time
	for d := today; d.After(today.AddDate(0, 0, -400)); d = d.AddDate(0, 0, -1) {
		dates = append(dates, d)
	}

	result := CalculateStreak(dates, today)
	require.Equal(t, 365, result.Current)
	require.Equal(t, 365, result.Longest)
}

func TestCalculateStreakIgnoresFutureDates(t *testing.T) {
	dates := days("2024-01-06", "2024-01-07", "2024-01-09")

	result := CalculateStreak(dates, day("2024-01-07"))
	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 2, result.Longest)
}
