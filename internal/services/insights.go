package services

import "github.com/moodverse/moodverse-backend/internal/catalog"

const maxInsights = 5

// Insight messages. Kept as constants so tests can assert exact output.
const (
	msgGetStarted = "Start logging your moods to unlock personalized insights! 🌱"

	msgExceptionalWellbeing = "You're experiencing exceptional emotional well-being! Keep doing what you're doing! 🌟"
	msgMostlyPositive       = "Your mood has been quite positive lately. Great job maintaining balance! 😊"
	msgRoughStretch         = "It's been a challenging stretch. Remember to be kind to yourself and take time for self-care. 💙"
	msgHealthyVariety       = "Your moods show a healthy mix. Ups and downs are a normal part of life. ⚖️"

	msgHighIntensity   = "Your emotions have been running at high intensity lately. Make sure to take time to recharge. ⚡"
	msgGentleEmotions  = "Your emotional intensity has been gentle recently. A calm, steady period. 🍃"
	msgSunnyBoost      = "Sunny days seem to brighten your mood. Try to get outside when the sun is out! ☀️"
	msgSocialBoost     = "Time with others gives your mood a noticeable boost. Keep nurturing those connections! 👥"
	msgGratitudeHabit  = "Gratitude is a recurring theme in your journal. That practice pays off! 🙏"
	msgExerciseBoost   = "Your mood runs higher on days you exercise. Your body thanks you! 💪"
	msgKeepTracking    = "Keep tracking your moods to reveal deeper patterns over time. 📈"
	msgOnboardingStats = "Log your first mood to start your journey! ✨"
)

// insightRule inspects the entry history and may contribute one message.
// Rules are pure; together with the fixed evaluation order below this makes
// insight output fully deterministic.
type insightRule func(entries []EntryFacts) (string, bool)

var insightRules = []insightRule{
	categoryRatioInsight,
	recentIntensityInsight,
	sunnyWeatherInsight,
	socialTagInsight,
	gratitudeInsight,
	exerciseTagInsight,
}

// GenerateInsights produces up to five human-readable observations from the
// entry history (most recent first). Empty history short-circuits to a single
// onboarding message; a history no rule matches gets a generic fallback.
func GenerateInsights(entries []EntryFacts) []string {
	if len(entries) == 0 {
		return []string{msgGetStarted}
	}

	insights := make([]string, 0, maxInsights)
	for _, rule := range insightRules {
		if len(insights) == maxInsights {
			break
		}
		if msg, ok := rule(entries); ok {
			insights = append(insights, msg)
		}
	}

	if len(insights) == 0 {
		insights = append(insights, msgKeepTracking)
	}
	return insights
}

func categoryRatioInsight(entries []EntryFacts) (string, bool) {
	positive := 0
	for _, e := range entries {
		if e.Category == catalog.CategoryPositive {
			positive++
		}
	}
	ratio := float64(positive) / float64(len(entries))

	switch {
	case ratio > 0.75:
		return msgExceptionalWellbeing, true
	case ratio > 0.6:
		return msgMostlyPositive, true
	case ratio < 0.3:
		return msgRoughStretch, true
	default:
		return msgHealthyVariety, true
	}
}

func recentIntensityInsight(entries []EntryFacts) (string, bool) {
	recent := entries
	if len(recent) > 14 {
		recent = recent[:14]
	}
	if len(recent) < 3 {
		return "", false
	}

	total := 0
	for _, e := range recent {
		total += e.Intensity
	}
	avg := float64(total) / float64(len(recent))

	switch {
	case avg > 4:
		return msgHighIntensity, true
	case avg < 2:
		return msgGentleEmotions, true
	default:
		return "", false
	}
}

func sunnyWeatherInsight(entries []EntryFacts) (string, bool) {
	tagged, sunny := 0, 0
	for _, e := range entries {
		if e.Weather == "" {
			continue
		}
		tagged++
		if e.Weather == "sunny" {
			sunny++
		}
	}
	if tagged <= 3 {
		return "", false
	}
	if float64(sunny)/float64(tagged) > 0.6 {
		return msgSunnyBoost, true
	}
	return "", false
}

func socialTagInsight(entries []EntryFacts) (string, bool) {
	socialTotal, socialCount, overallTotal := 0, 0, 0
	for _, e := range entries {
		overallTotal += e.Intensity
		if e.hasTag("social") {
			socialTotal += e.Intensity
			socialCount++
		}
	}
	if socialCount <= 2 {
		return "", false
	}

	socialAvg := float64(socialTotal) / float64(socialCount)
	overallAvg := float64(overallTotal) / float64(len(entries))
	if socialAvg-overallAvg > 0.5 {
		return msgSocialBoost, true
	}
	return "", false
}

func gratitudeInsight(entries []EntryFacts) (string, bool) {
	grateful := 0
	for _, e := range entries {
		if e.MoodID == "grateful" {
			grateful++
		}
	}
	if grateful > 3 {
		return msgGratitudeHabit, true
	}
	return "", false
}

func exerciseTagInsight(entries []EntryFacts) (string, bool) {
	total, count := 0, 0
	for _, e := range entries {
		if e.hasTag("exercise") {
			total += e.Intensity
			count++
		}
	}
	if count <= 2 {
		return "", false
	}
	if float64(total)/float64(count) > 3.5 {
		return msgExerciseBoost, true
	}
	return "", false
}
