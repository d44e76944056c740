package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOverDays(moodID string, n int) []EntryFacts {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	facts := make([]EntryFacts, n)
	for i := range facts {
		facts[i] = EntryFacts{
			MoodID:     moodID,
			Intensity:  3,
			Date:       base.AddDate(0, 0, i),
			RecordedAt: base.AddDate(0, 0, i),
		}
	}
	return facts
}

func TestEvaluateAchievementsFirstEntry(t *testing.T) {
	defs := catalog.Default().Achievements()
	in := AchievementInputs{
		Entries:  entriesOverDays("happy", 1),
		Unlocked: map[string]bool{},
	}

	newly := EvaluateAchievements(defs, in)
	assert.Equal(t, []string{"first_entry"}, newly)
}

func TestEvaluateAchievementsWeekStreakNotMonth(t *testing.T) {
	defs := catalog.Default().Achievements()
	in := AchievementInputs{
		Entries:  entriesOverDays("happy", 7),
		Streak:   dto.StreakResult{Current: 7, Longest: 7},
		Unlocked: map[string]bool{"first_entry": true},
	}

	newly := EvaluateAchievements(defs, in)
	assert.Contains(t, newly, "week_streak")
	assert.NotContains(t, newly, "month_streak")
}

func TestEvaluateAchievementsSkipsAlreadyUnlocked(t *testing.T) {
	defs := catalog.Default().Achievements()
	in := AchievementInputs{
		Entries:  entriesOverDays("happy", 7),
		Streak:   dto.StreakResult{Current: 7, Longest: 7},
		Unlocked: map[string]bool{},
	}

	first := EvaluateAchievements(defs, in)
	require.NotEmpty(t, first)

	for _, id := range first {
		in.Unlocked[id] = true
	}
	second := EvaluateAchievements(defs, in)
	assert.Empty(t, second)
}

func TestEvaluateAchievementsMoodSpecificCount(t *testing.T) {
	defs := []catalog.Achievement{
		{ID: "gratitude_guru", MoodID: "grateful", Criteria: map[string]int{catalog.CriteriaMoodCount: 20}},
	}

	in := AchievementInputs{Entries: entriesOverDays("grateful", 19), Unlocked: map[string]bool{}}
	assert.Empty(t, EvaluateAchievements(defs, in))

	in.Entries = entriesOverDays("grateful", 20)
	assert.Equal(t, []string{"gratitude_guru"}, EvaluateAchievements(defs, in))

	// Other moods do not count toward a mood-specific criterion.
	in.Entries = entriesOverDays("happy", 25)
	assert.Empty(t, EvaluateAchievements(defs, in))
}

func TestEvaluateAchievementsAllCriteriaMustHold(t *testing.T) {
	defs := []catalog.Achievement{
		{ID: "combo", Criteria: map[string]int{
			catalog.CriteriaTotalEntries:  5,
			catalog.CriteriaCurrentStreak: 5,
		}},
	}

	in := AchievementInputs{
		Entries:  entriesOverDays("happy", 10),
		Streak:   dto.StreakResult{Current: 2},
		Unlocked: map[string]bool{},
	}
	assert.Empty(t, EvaluateAchievements(defs, in))

	in.Streak.Current = 5
	assert.Equal(t, []string{"combo"}, EvaluateAchievements(defs, in))
}

func TestEvaluateAchievementsAuxiliaryCounts(t *testing.T) {
	defs := catalog.Default().Achievements()
	in := AchievementInputs{
		Entries:         entriesOverDays("happy", 1),
		Unlocked:        map[string]bool{"first_entry": true},
		FriendCount:     5,
		MeditationCount: 10,
	}

	newly := EvaluateAchievements(defs, in)
	assert.Contains(t, newly, "social_butterfly")
	assert.Contains(t, newly, "zen_master")
}

func TestEvaluateAchievementsLateNightWindow(t *testing.T) {
	defs := []catalog.Achievement{
		{ID: "night_owl", Criteria: map[string]int{catalog.CriteriaLateNightEntries: 5}},
	}

	facts := make([]EntryFacts, 0, 6)
	hours := []int{23, 0, 1, 2, 23}
	for i, h := range hours {
		at := time.Date(2026, 3, 1+i, h, 30, 0, 0, time.UTC)
		facts = append(facts, EntryFacts{MoodID: "calm", Date: at, RecordedAt: at})
	}
	// 12:00 falls outside the window and must not count.
	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	facts = append(facts, EntryFacts{MoodID: "calm", Date: noon, RecordedAt: noon})

	in := AchievementInputs{Entries: facts, Unlocked: map[string]bool{}}
	assert.Equal(t, []string{"night_owl"}, EvaluateAchievements(defs, in))
}

func TestEvaluateAchievementsAllMoodsUsed(t *testing.T) {
	cat := catalog.Default()
	defs := []catalog.Achievement{
		{ID: "emotional_intelligence", Criteria: map[string]int{catalog.CriteriaAllMoodsUsed: 1}},
	}

	var facts []EntryFacts
	for _, m := range cat.Moods() {
		facts = append(facts, entriesOverDays(m.ID, 1)...)
	}
	in := AchievementInputs{
		Entries:        facts,
		Unlocked:       map[string]bool{},
		KnownMoodCount: cat.Size(),
	}
	assert.Equal(t, []string{"emotional_intelligence"}, EvaluateAchievements(defs, in))

	in.Entries = facts[:len(facts)-1]
	assert.Empty(t, EvaluateAchievements(defs, in))
}

type fakeUnlockStore struct {
	rows map[string]models.AchievementUnlock
	err  error
}

func newFakeUnlockStore() *fakeUnlockStore {
	return &fakeUnlockStore{rows: make(map[string]models.AchievementUnlock)}
}

func (f *fakeUnlockStore) ListUnlocked(userID uuid.UUID) ([]models.AchievementUnlock, error) {
	var out []models.AchievementUnlock
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, f.err
}

func (f *fakeUnlockStore) InsertIfAbsent(userID uuid.UUID, achievementID string, at time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, exists := f.rows[achievementID]; exists {
		return false, nil
	}
	f.rows[achievementID] = models.AchievementUnlock{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    at,
	}
	return true, nil
}

type fakeNotificationSink struct {
	created []*models.Notification
	err     error
}

func (f *fakeNotificationSink) Create(n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, n)
	return nil
}

func TestUnlockAndNotifyOnce(t *testing.T) {
	store := newFakeUnlockStore()
	sink := &fakeNotificationSink{}
	svc := &AchievementService{
		cat:           catalog.Default(),
		unlocks:       store,
		notifications: sink,
	}
	userID := uuid.New()

	unlocked, err := svc.unlockAndNotify(userID, []string{"first_entry", "week_streak"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first_entry", "week_streak"}, unlocked)
	assert.Len(t, sink.created, 2)
	assert.Equal(t, models.NotificationTypeAchievement, sink.created[0].Type)

	// A repeat run hits the existing rows and must not notify again.
	unlocked, err = svc.unlockAndNotify(userID, []string{"first_entry", "week_streak"})
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Len(t, sink.created, 2)
}

func TestUnlockAndNotifySwallowsNotifyError(t *testing.T) {
	store := newFakeUnlockStore()
	sink := &fakeNotificationSink{err: errors.New("queue full")}
	svc := &AchievementService{
		cat:           catalog.Default(),
		unlocks:       store,
		notifications: sink,
	}

	unlocked, err := svc.unlockAndNotify(uuid.New(), []string{"first_entry"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first_entry"}, unlocked)
}

func TestListWithStatus(t *testing.T) {
	store := newFakeUnlockStore()
	sink := &fakeNotificationSink{}
	svc := &AchievementService{
		cat:           catalog.Default(),
		unlocks:       store,
		notifications: sink,
	}
	userID := uuid.New()

	_, err := svc.unlockAndNotify(userID, []string{"first_entry"})
	require.NoError(t, err)

	statuses, err := svc.ListWithStatus(userID)
	require.NoError(t, err)
	assert.Len(t, statuses, len(catalog.Default().Achievements()))

	byID := make(map[string]dto.AchievementStatus)
	for _, s := range statuses {
		byID[s.ID] = s
	}
	assert.True(t, byID["first_entry"].Unlocked)
	require.NotNil(t, byID["first_entry"].UnlockedAt)
	assert.False(t, byID["week_streak"].Unlocked)
	assert.Nil(t, byID["week_streak"].UnlockedAt)
}
