package services

import (
	"testing"
	"time"

	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatsReportEmptyHistory(t *testing.T) {
	report := BuildStatsReport(nil, time.Now().UTC())

	assert.Zero(t, report.TotalEntries)
	assert.Empty(t, report.MoodCounts)
	assert.Empty(t, report.MostCommonMood)
	assert.Zero(t, report.CurrentStreak)
	assert.Empty(t, report.Insights)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, msgOnboardingStats, report.Recommendations[0])
}

func TestBuildStatsReportAggregates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC) }

	facts := []EntryFacts{
		{MoodID: "happy", Label: "Happy", Category: catalog.CategoryPositive, Intensity: 4, Date: day(10), RecordedAt: day(10), Weather: "sunny", Tags: []string{"exercise"}},
		{MoodID: "happy", Label: "Happy", Category: catalog.CategoryPositive, Intensity: 4, Date: day(9), RecordedAt: day(9), Weather: "sunny"},
		{MoodID: "sad", Label: "Sad", Category: catalog.CategoryNegative, Intensity: 2, Date: day(8), RecordedAt: day(8), Weather: "rainy", Tags: []string{"work"}},
		{MoodID: "calm", Label: "Calm", Category: catalog.CategoryNeutral, Intensity: 3, Date: day(7), RecordedAt: day(7), Tags: []string{"exercise"}},
	}

	report := BuildStatsReport(facts, now)

	assert.Equal(t, 4, report.TotalEntries)
	assert.Equal(t, 2, report.MoodCounts["Happy"])
	assert.Equal(t, "Happy", report.MostCommonMood)
	assert.Equal(t, 2, report.CategoryDistribution[catalog.CategoryPositive])
	assert.Equal(t, 1, report.CategoryDistribution[catalog.CategoryNegative])
	assert.Equal(t, 1, report.CategoryDistribution[catalog.CategoryNeutral])

	assert.Equal(t, 2, report.WeatherCorrelation["sunny"][catalog.CategoryPositive])
	assert.Equal(t, 1, report.WeatherCorrelation["rainy"][catalog.CategoryNegative])

	exercise := report.ActivityCorrelation["exercise"]
	assert.Equal(t, 2, exercise.Count)
	assert.InDelta(t, 3.5, exercise.AvgIntensity, 0.001)

	assert.Equal(t, 4, report.CurrentStreak)
	assert.Equal(t, 4, report.LongestStreak)
	assert.Zero(t, report.StreakBreaks)

	assert.InDelta(t, 3.25, report.WeeklyAvgIntensity, 0.001)
	assert.NotEmpty(t, report.Insights)
	assert.Equal(t, report.Insights, report.Recommendations)
}

func TestBuildStatsReportMostCommonMoodTieBreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	facts := []EntryFacts{
		{Label: "Calm", Category: catalog.CategoryNeutral, Intensity: 3, Date: now},
		{Label: "Happy", Category: catalog.CategoryPositive, Intensity: 4, Date: now.AddDate(0, 0, -1)},
	}

	report := BuildStatsReport(facts, now)
	assert.Equal(t, "Calm", report.MostCommonMood)
}

func TestInsightWindowClamp(t *testing.T) {
	assert.Equal(t, maxAggregationEntries, insightWindow(0))
	assert.Equal(t, maxAggregationEntries, insightWindow(-3))
	assert.Equal(t, maxAggregationEntries, insightWindow(maxAggregationEntries+1))
	assert.Equal(t, 30, insightWindow(30))
	assert.Equal(t, 1, insightWindow(1))
}

func TestInsightsRespectWindow(t *testing.T) {
	// Newest-first: a positive recent stretch in front of an older negative
	// one. A narrow window must only see the recent entries.
	facts := make([]EntryFacts, 0, 20)
	for i := 0; i < 10; i++ {
		facts = append(facts, EntryFacts{MoodID: "happy", Category: catalog.CategoryPositive, Intensity: 4})
	}
	for i := 0; i < 10; i++ {
		facts = append(facts, EntryFacts{MoodID: "sad", Category: catalog.CategoryNegative, Intensity: 2})
	}

	narrow := GenerateInsights(facts[:insightWindow(10)])
	require.NotEmpty(t, narrow)
	assert.Equal(t, msgExceptionalWellbeing, narrow[0])

	full := GenerateInsights(facts)
	require.NotEmpty(t, full)
	assert.Equal(t, msgHealthyVariety, full[0])
}

func TestTrailingAvgIntensityWindows(t *testing.T) {
	facts := make([]EntryFacts, 10)
	for i := range facts {
		// First 7 entries at 5, the rest at 1.
		facts[i].Intensity = 1
		if i < 7 {
			facts[i].Intensity = 5
		}
	}

	assert.InDelta(t, 5.0, trailingAvgIntensity(facts, 7), 0.001)
	assert.InDelta(t, 3.8, trailingAvgIntensity(facts, 30), 0.001)
}
