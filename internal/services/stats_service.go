package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService derives analytics from the journal history. Nothing here is
// persisted; every report is recomputed from the entries on demand.
type StatsService struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewStatsService(db *gorm.DB, cat *catalog.Catalog) *StatsService {
	return &StatsService{db: db, cat: cat}
}

// GetStats computes the full analytics payload over the user's history.
func (s *StatsService) GetStats(userID uuid.UUID) (*dto.StatsReport, error) {
	facts, err := s.loadFacts(userID, nil)
	if err != nil {
		return nil, err
	}
	report := BuildStatsReport(facts, time.Now().UTC())
	return &report, nil
}

// GetWeeklyReport computes the same analytics restricted to the trailing
// seven days.
func (s *StatsService) GetWeeklyReport(userID uuid.UUID) (*dto.WeeklyReport, error) {
	now := time.Now().UTC()
	weekStart := now.AddDate(0, 0, -6)

	facts, err := s.loadFacts(userID, &weekStart)
	if err != nil {
		return nil, err
	}
	stats := BuildStatsReport(facts, now)

	return &dto.WeeklyReport{
		UserID:          userID.String(),
		WeekStart:       weekStart.Format(entryDateLayout),
		WeekEnd:         now.Format(entryDateLayout),
		Stats:           stats,
		Insights:        stats.Insights,
		Recommendations: stats.Recommendations,
	}, nil
}

// GetInsights returns just the insight messages, computed over the caller's
// most recent windowSize entries.
func (s *StatsService) GetInsights(userID uuid.UUID, windowSize int) ([]string, error) {
	facts, err := s.loadFacts(userID, nil)
	if err != nil {
		return nil, err
	}

	window := insightWindow(windowSize)
	if len(facts) > window {
		facts = facts[:window]
	}
	return GenerateInsights(facts), nil
}

// insightWindow clamps a requested window to something the loader can honor.
// Zero, negative and oversized requests fall back to the aggregation cap.
func insightWindow(requested int) int {
	if requested <= 0 || requested > maxAggregationEntries {
		return maxAggregationEntries
	}
	return requested
}

func (s *StatsService) loadFacts(userID uuid.UUID, from *time.Time) ([]EntryFacts, error) {
	query := s.db.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("entry_date >= ?", from.Format(entryDateLayout))
	}

	var entries []models.MoodEntry
	if err := query.Order("entry_date DESC").Limit(maxAggregationEntries).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	var customs []models.CustomMood
	if err := s.db.Where("user_id = ?", userID).Find(&customs).Error; err != nil {
		return nil, fmt.Errorf("failed to load custom moods: %w", err)
	}

	return BuildFacts(entries, NewMoodResolver(s.cat, customs)), nil
}

// BuildStatsReport aggregates entry facts (most recent first) into the stats
// payload. An empty history yields a zeroed report with an onboarding
// recommendation instead of an error.
func BuildStatsReport(facts []EntryFacts, now time.Time) dto.StatsReport {
	report := dto.StatsReport{
		MoodCounts:           make(map[string]int),
		CategoryDistribution: make(map[string]int),
		WeatherCorrelation:   make(map[string]map[string]int),
		ActivityCorrelation:  make(map[string]dto.TagCorrelation),
		Insights:             []string{},
		Recommendations:      []string{},
	}

	if len(facts) == 0 {
		report.Recommendations = []string{msgOnboardingStats}
		return report
	}

	tagTotals := make(map[string]int)
	for _, f := range facts {
		report.TotalEntries++
		report.MoodCounts[f.Label]++
		report.CategoryDistribution[f.Category]++

		if f.Weather != "" {
			if report.WeatherCorrelation[f.Weather] == nil {
				report.WeatherCorrelation[f.Weather] = make(map[string]int)
			}
			report.WeatherCorrelation[f.Weather][f.Category]++
		}
		for _, tag := range f.Tags {
			c := report.ActivityCorrelation[tag]
			c.Count++
			tagTotals[tag] += f.Intensity
			report.ActivityCorrelation[tag] = c
		}
	}
	for tag, c := range report.ActivityCorrelation {
		c.AvgIntensity = float64(tagTotals[tag]) / float64(c.Count)
		report.ActivityCorrelation[tag] = c
	}

	report.MostCommonMood = mostCommonMood(facts)

	dates := make([]time.Time, 0, len(facts))
	for _, f := range facts {
		dates = append(dates, f.Date)
	}
	streak := CalculateStreak(dates, now)
	report.CurrentStreak = streak.Current
	report.LongestStreak = streak.Longest
	report.StreakBreaks = streak.Breaks

	report.WeeklyAvgIntensity = trailingAvgIntensity(facts, 7)
	report.MonthlyAvgIntensity = trailingAvgIntensity(facts, 30)

	report.Insights = GenerateInsights(facts)
	report.Recommendations = report.Insights
	return report
}

// mostCommonMood breaks count ties by first appearance in the (newest-first)
// history, keeping the result deterministic.
func mostCommonMood(facts []EntryFacts) string {
	counts := make(map[string]int, len(facts))
	for _, f := range facts {
		counts[f.Label]++
	}

	best, bestCount := "", 0
	for _, f := range facts {
		if counts[f.Label] > bestCount {
			best = f.Label
			bestCount = counts[f.Label]
		}
	}
	return best
}

func trailingAvgIntensity(facts []EntryFacts, n int) float64 {
	if len(facts) > n {
		facts = facts[:n]
	}
	if len(facts) == 0 {
		return 0
	}
	total := 0
	for _, f := range facts {
		total += f.Intensity
	}
	return float64(total) / float64(len(facts))
}
