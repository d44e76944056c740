package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnlockStore persists achievement unlocks. InsertIfAbsent must be atomic:
// it reports whether the row was newly created, which is what keeps
// unlock-and-notify idempotent under concurrent duplicate triggers.
type UnlockStore interface {
	ListUnlocked(userID uuid.UUID) ([]models.AchievementUnlock, error)
	InsertIfAbsent(userID uuid.UUID, achievementID string, at time.Time) (bool, error)
}

// NotificationSink receives the one notification per fresh unlock.
type NotificationSink interface {
	Create(n *models.Notification) error
}

// AchievementService evaluates the rule table against a user's history and
// records fresh unlocks.
type AchievementService struct {
	db            *gorm.DB
	cat           *catalog.Catalog
	unlocks       UnlockStore
	notifications NotificationSink
}

func NewAchievementService(db *gorm.DB, cat *catalog.Catalog, notifications NotificationSink) *AchievementService {
	return &AchievementService{
		db:            db,
		cat:           cat,
		unlocks:       &gormUnlockStore{db: db},
		notifications: notifications,
	}
}

// Evaluate loads the user's history, finds newly-qualifying achievements,
// persists each unlock exactly once and notifies for each fresh unlock.
// Running it again with no new entries yields an empty result.
func (s *AchievementService) Evaluate(userID uuid.UUID) ([]string, error) {
	inputs, err := s.gatherInputs(userID)
	if err != nil {
		return nil, err
	}

	newly := EvaluateAchievements(s.cat.Achievements(), inputs)
	return s.unlockAndNotify(userID, newly)
}

// unlockAndNotify records each unlock via insert-if-absent. An id that lost
// the race to a concurrent evaluation is dropped from the result and not
// re-notified.
func (s *AchievementService) unlockAndNotify(userID uuid.UUID, ids []string) ([]string, error) {
	unlocked := make([]string, 0, len(ids))
	for _, id := range ids {
		fresh, err := s.unlocks.InsertIfAbsent(userID, id, time.Now().UTC())
		if err != nil {
			return unlocked, fmt.Errorf("failed to record unlock %s: %w", id, err)
		}
		if !fresh {
			continue
		}
		unlocked = append(unlocked, id)

		def, _ := s.cat.Achievement(id)
		notification := &models.Notification{
			UserID:   userID,
			Type:     models.NotificationTypeAchievement,
			Title:    "Achievement Unlocked: " + def.Name,
			Message:  def.Icon + " " + def.Description,
			Priority: models.NotificationPriorityNormal,
		}
		if err := s.notifications.Create(notification); err != nil {
			// The unlock stands; delivery is fire-and-forget.
			slog.Error("achievement notification failed", "achievement", id, "error", err)
		}
	}
	return unlocked, nil
}

// ListWithStatus returns every definition with the caller's unlock state.
func (s *AchievementService) ListWithStatus(userID uuid.UUID) ([]dto.AchievementStatus, error) {
	unlocks, err := s.unlocks.ListUnlocked(userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	defs := s.cat.Achievements()
	result := make([]dto.AchievementStatus, 0, len(defs))
	for _, def := range defs {
		status := dto.AchievementStatus{Achievement: def}
		if at, ok := unlockedAt[def.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = &at
		}
		result = append(result, status)
	}
	return result, nil
}

func (s *AchievementService) gatherInputs(userID uuid.UUID) (AchievementInputs, error) {
	var entries []models.MoodEntry
	if err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC").
		Limit(maxAggregationEntries).
		Find(&entries).Error; err != nil {
		return AchievementInputs{}, fmt.Errorf("failed to load entries: %w", err)
	}

	var customs []models.CustomMood
	if err := s.db.Where("user_id = ?", userID).Find(&customs).Error; err != nil {
		return AchievementInputs{}, fmt.Errorf("failed to load custom moods: %w", err)
	}

	var friendCount int64
	if err := s.db.Model(&models.Friendship{}).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, models.FriendStatusAccepted).
		Count(&friendCount).Error; err != nil {
		return AchievementInputs{}, fmt.Errorf("failed to count friends: %w", err)
	}

	var meditationCount int64
	if err := s.db.Model(&models.MeditationSession{}).
		Where("user_id = ? AND completed = true", userID).
		Count(&meditationCount).Error; err != nil {
		return AchievementInputs{}, fmt.Errorf("failed to count meditation sessions: %w", err)
	}

	unlocks, err := s.unlocks.ListUnlocked(userID)
	if err != nil {
		return AchievementInputs{}, fmt.Errorf("failed to load unlocks: %w", err)
	}
	unlocked := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		unlocked[u.AchievementID] = true
	}

	resolver := NewMoodResolver(s.cat, customs)
	facts := BuildFacts(entries, resolver)
	dates := make([]time.Time, 0, len(facts))
	for _, f := range facts {
		dates = append(dates, f.Date)
	}

	return AchievementInputs{
		Entries:         facts,
		Streak:          CalculateStreak(dates, time.Now().UTC()),
		Unlocked:        unlocked,
		FriendCount:     int(friendCount),
		MeditationCount: int(meditationCount),
		CustomMoodCount: len(customs),
		KnownMoodCount:  resolver.KnownMoodCount(),
	}, nil
}

type gormUnlockStore struct {
	db *gorm.DB
}

func (s *gormUnlockStore) ListUnlocked(userID uuid.UUID) ([]models.AchievementUnlock, error) {
	var unlocks []models.AchievementUnlock
	err := s.db.Where("user_id = ?", userID).Find(&unlocks).Error
	return unlocks, err
}

// InsertIfAbsent relies on the (user_id, achievement_id) unique index: the
// conflicting insert becomes a no-op and RowsAffected reports whether this
// call actually created the row.
func (s *gormUnlockStore) InsertIfAbsent(userID uuid.UUID, achievementID string, at time.Time) (bool, error) {
	unlock := models.AchievementUnlock{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    at,
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&unlock)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
