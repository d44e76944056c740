package services

import (
	"testing"

	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positiveFacts(n int) []EntryFacts {
	facts := make([]EntryFacts, n)
	for i := range facts {
		facts[i] = EntryFacts{MoodID: "happy", Category: catalog.CategoryPositive, Intensity: 4}
	}
	return facts
}

func TestGenerateInsightsEmptyHistory(t *testing.T) {
	insights := GenerateInsights(nil)
	require.Len(t, insights, 1)
	assert.Equal(t, msgGetStarted, insights[0])
}

func TestGenerateInsightsAllPositiveIsFirst(t *testing.T) {
	insights := GenerateInsights(positiveFacts(12))
	require.NotEmpty(t, insights)
	assert.Equal(t, msgExceptionalWellbeing, insights[0])
}

func TestGenerateInsightsCategoryRatioThresholds(t *testing.T) {
	tests := []struct {
		name     string
		positive int
		total    int
		want     string
	}{
		{"exceptional above 75 percent", 10, 12, msgExceptionalWellbeing},
		{"positive above 60 percent", 7, 10, msgMostlyPositive},
		{"supportive below 30 percent", 2, 10, msgRoughStretch},
		{"neutral in between", 5, 10, msgHealthyVariety},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := make([]EntryFacts, 0, tt.total)
			for i := 0; i < tt.positive; i++ {
				facts = append(facts, EntryFacts{MoodID: "happy", Category: catalog.CategoryPositive, Intensity: 3})
			}
			for i := tt.positive; i < tt.total; i++ {
				facts = append(facts, EntryFacts{MoodID: "sad", Category: catalog.CategoryNegative, Intensity: 3})
			}
			insights := GenerateInsights(facts)
			require.NotEmpty(t, insights)
			assert.Equal(t, tt.want, insights[0])
		})
	}
}

func TestGenerateInsightsHighIntensity(t *testing.T) {
	facts := positiveFacts(5)
	for i := range facts {
		facts[i].Intensity = 5
	}
	insights := GenerateInsights(facts)
	assert.Contains(t, insights, msgHighIntensity)
}

func TestGenerateInsightsIntensityNeedsThreeSamples(t *testing.T) {
	facts := positiveFacts(2)
	for i := range facts {
		facts[i].Intensity = 5
	}
	insights := GenerateInsights(facts)
	assert.NotContains(t, insights, msgHighIntensity)
}

func TestGenerateInsightsSunnyCorrelation(t *testing.T) {
	facts := positiveFacts(6)
	for i := 0; i < 4; i++ {
		facts[i].Weather = "sunny"
	}
	facts[4].Weather = "rainy"
	// 4/5 weather-tagged entries sunny, above the 60% bar with >3 samples.
	insights := GenerateInsights(facts)
	assert.Contains(t, insights, msgSunnyBoost)
}

func TestGenerateInsightsSunnyNeedsEnoughSamples(t *testing.T) {
	facts := positiveFacts(6)
	facts[0].Weather = "sunny"
	facts[1].Weather = "sunny"
	facts[2].Weather = "sunny"
	insights := GenerateInsights(facts)
	assert.NotContains(t, insights, msgSunnyBoost)
}

func TestGenerateInsightsSocialBoost(t *testing.T) {
	facts := []EntryFacts{
		{MoodID: "happy", Category: catalog.CategoryPositive, Intensity: 5, Tags: []string{"social"}},
		{MoodID: "happy", Category: catalog.CategoryPositive, Intensity: 5, Tags: []string{"social"}},
		{MoodID: "excited", Category: catalog.CategoryPositive, Intensity: 5, Tags: []string{"social"}},
		{MoodID: "tired", Category: catalog.CategoryNeutral, Intensity: 2},
		{MoodID: "tired", Category: catalog.CategoryNeutral, Intensity: 2},
		{MoodID: "sad", Category: catalog.CategoryNegative, Intensity: 2},
	}
	insights := GenerateInsights(facts)
	assert.Contains(t, insights, msgSocialBoost)
}

func TestGenerateInsightsGratitude(t *testing.T) {
	facts := positiveFacts(3)
	for i := 0; i < 4; i++ {
		facts = append(facts, EntryFacts{MoodID: "grateful", Category: catalog.CategoryPositive, Intensity: 4})
	}
	insights := GenerateInsights(facts)
	assert.Contains(t, insights, msgGratitudeHabit)
}

func TestGenerateInsightsExerciseBoost(t *testing.T) {
	facts := positiveFacts(3)
	for i := range facts {
		facts[i].Tags = []string{"exercise"}
		facts[i].Intensity = 4
	}
	insights := GenerateInsights(facts)
	assert.Contains(t, insights, msgExerciseBoost)
}

func TestGenerateInsightsDeterministic(t *testing.T) {
	facts := positiveFacts(10)
	for i := 0; i < 5; i++ {
		facts[i].Weather = "sunny"
		facts[i].Tags = []string{"exercise"}
	}
	first := GenerateInsights(facts)
	second := GenerateInsights(facts)
	assert.Equal(t, first, second)
}

func TestGenerateInsightsCapAtFive(t *testing.T) {
	facts := make([]EntryFacts, 0, 20)
	for i := 0; i < 16; i++ {
		f := EntryFacts{
			MoodID:    "grateful",
			Category:  catalog.CategoryPositive,
			Intensity: 5,
			Weather:   "sunny",
			Tags:      []string{"social", "exercise"},
		}
		facts = append(facts, f)
	}
	for i := 0; i < 4; i++ {
		facts = append(facts, EntryFacts{MoodID: "tired", Category: catalog.CategoryNeutral, Intensity: 1})
	}
	insights := GenerateInsights(facts)
	assert.LessOrEqual(t, len(insights), 5)
}
