package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidMood      = errors.New("unknown mood id")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 5")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrEntryNotFound    = errors.New("mood entry not found")
)

const entryDateLayout = "2006-01-02"

// MoodService owns the journaling write path: one entry per user per day,
// with crisis screening and achievement evaluation as side effects.
type MoodService struct {
	db           *gorm.DB
	cat          *catalog.Catalog
	crisis       *CrisisDetector
	achievements *AchievementService
}

func NewMoodService(db *gorm.DB, cat *catalog.Catalog, crisis *CrisisDetector, achievements *AchievementService) *MoodService {
	return &MoodService{db: db, cat: cat, crisis: crisis, achievements: achievements}
}

// RecordMood creates or replaces the entry for the given day. It returns the
// stored entry plus any achievement ids the write newly unlocked.
func (s *MoodService) RecordMood(userID uuid.UUID, req *dto.CreateMoodRequest) (*models.MoodEntry, []string, error) {
	entryDate, err := time.Parse(entryDateLayout, req.Date)
	if err != nil {
		return nil, nil, ErrInvalidDate
	}

	customs, err := s.loadCustomMoods(userID)
	if err != nil {
		return nil, nil, err
	}
	resolver := NewMoodResolver(s.cat, customs)

	_, _, defaultIntensity, ok := resolver.Resolve(req.MoodID)
	if !ok {
		return nil, nil, ErrInvalidMood
	}

	intensity := defaultIntensity
	if req.Intensity != nil {
		intensity = *req.Intensity
	}
	if intensity < 1 || intensity > 5 {
		return nil, nil, ErrInvalidIntensity
	}

	recordedAt := time.Now().UTC()
	if req.Timestamp != nil {
		recordedAt = req.Timestamp.UTC()
	}

	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	entry := models.MoodEntry{
		UserID:       userID,
		EntryDate:    entryDate,
		MoodID:       req.MoodID,
		Note:         req.Note,
		Intensity:    intensity,
		VoiceNoteURL: req.VoiceNoteURL,
		PhotoURL:     req.PhotoURL,
		IsPrivate:    isPrivate,
		RecordedAt:   recordedAt,
	}
	if err := encodeContext(&entry, req); err != nil {
		return nil, nil, err
	}

	// Re-recording the same day replaces the previous entry in one statement,
	// so concurrent submissions cannot produce two rows for one date.
	if err := s.db.Clauses(entryUpsertClause()).Create(&entry).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to save mood entry: %w", err)
	}

	s.bumpCustomMoodUsage(userID, req.MoodID)
	s.crisis.Check(userID, req.Note)

	unlocked, err := s.achievements.Evaluate(userID)
	if err != nil {
		// The entry is saved; achievement evaluation can catch up next write.
		slog.Error("achievement evaluation failed", "error", err)
		unlocked = nil
	}
	return &entry, unlocked, nil
}

// entryUpsertClause is the conflict action for the (user_id, entry_date)
// unique index. The assignment list must include deleted_at: a soft-deleted
// row still occupies the index, and re-logging that day has to resurrect it
// (the incoming row's NULL deleted_at overwrites the tombstone) or the write
// would succeed while the entry stays invisible.
func entryUpsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood_id", "note", "intensity", "voice_note_url", "photo_url",
			"weather", "location", "tags", "activity_data", "sleep_data",
			"is_private", "recorded_at", "updated_at", "deleted_at",
		}),
	}
}

func encodeContext(entry *models.MoodEntry, req *dto.CreateMoodRequest) error {
	encode := func(v any) (datatypes.JSON, error) {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode entry context: %w", err)
		}
		return datatypes.JSON(raw), nil
	}

	var err error
	if req.Weather != nil {
		if entry.Weather, err = encode(req.Weather); err != nil {
			return err
		}
	}
	if req.Location != nil {
		if entry.Location, err = encode(req.Location); err != nil {
			return err
		}
	}
	if len(req.Tags) > 0 {
		if entry.Tags, err = encode(req.Tags); err != nil {
			return err
		}
	}
	if len(req.ActivityData) > 0 {
		if entry.ActivityData, err = encode(req.ActivityData); err != nil {
			return err
		}
	}
	if len(req.SleepData) > 0 {
		if entry.SleepData, err = encode(req.SleepData); err != nil {
			return err
		}
	}
	return nil
}

func (s *MoodService) bumpCustomMoodUsage(userID uuid.UUID, moodID string) {
	if _, found := s.cat.Mood(moodID); found {
		return
	}
	err := s.db.Model(&models.CustomMood{}).
		Where("user_id = ? AND mood_id = ?", userID, moodID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
	if err != nil {
		slog.Error("custom mood usage update failed", "mood_id", moodID, "error", err)
	}
}

// List returns entries newest first, optionally bounded by an inclusive
// date range.
func (s *MoodService) List(userID uuid.UUID, from, to *time.Time, limit int) ([]models.MoodEntry, error) {
	if limit <= 0 || limit > maxAggregationEntries {
		limit = 100
	}

	query := s.db.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("entry_date >= ?", from.Format(entryDateLayout))
	}
	if to != nil {
		query = query.Where("entry_date <= ?", to.Format(entryDateLayout))
	}

	var entries []models.MoodEntry
	err := query.Order("entry_date DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (s *MoodService) GetByID(userID, entryID uuid.UUID) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update patches the fields present in the request.
func (s *MoodService) Update(userID, entryID uuid.UUID, req *dto.UpdateMoodRequest) (*models.MoodEntry, error) {
	entry, err := s.GetByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.MoodID != nil {
		customs, err := s.loadCustomMoods(userID)
		if err != nil {
			return nil, err
		}
		resolver := NewMoodResolver(s.cat, customs)
		if _, _, _, ok := resolver.Resolve(*req.MoodID); !ok {
			return nil, ErrInvalidMood
		}
		entry.MoodID = *req.MoodID
	}
	if req.Intensity != nil {
		if *req.Intensity < 1 || *req.Intensity > 5 {
			return nil, ErrInvalidIntensity
		}
		entry.Intensity = *req.Intensity
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	if req.Tags != nil {
		raw, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		entry.Tags = raw
	}
	if req.VoiceNoteURL != nil {
		entry.VoiceNoteURL = *req.VoiceNoteURL
	}
	if req.PhotoURL != nil {
		entry.PhotoURL = *req.PhotoURL
	}
	if req.IsPrivate != nil {
		entry.IsPrivate = *req.IsPrivate
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}

	if req.Note != nil {
		s.crisis.Check(userID, entry.Note)
	}
	return entry, nil
}

func (s *MoodService) Delete(userID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ExportCSV writes the user's journal as CSV, newest first, capped at the
// aggregation limit.
func (s *MoodService) ExportCSV(userID uuid.UUID) (string, error) {
	entries, err := s.List(userID, nil, nil, maxAggregationEntries)
	if err != nil {
		return "", err
	}
	customs, err := s.loadCustomMoods(userID)
	if err != nil {
		return "", err
	}
	return renderCSV(entries, NewMoodResolver(s.cat, customs))
}

func renderCSV(entries []models.MoodEntry, resolver *MoodResolver) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Mood", "Emoji", "Intensity", "Note", "Tags", "Weather", "Timestamp"}); err != nil {
		return "", err
	}

	facts := BuildFacts(entries, resolver)
	for i, f := range facts {
		record := []string{
			f.Date.Format(entryDateLayout),
			f.Label,
			resolver.Emoji(f.MoodID),
			strconv.Itoa(f.Intensity),
			entries[i].Note,
			strings.Join(f.Tags, ";"),
			f.Weather,
			f.RecordedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *MoodService) loadCustomMoods(userID uuid.UUID) ([]models.CustomMood, error) {
	var customs []models.CustomMood
	if err := s.db.Where("user_id = ?", userID).Find(&customs).Error; err != nil {
		return nil, fmt.Errorf("failed to load custom moods: %w", err)
	}
	return customs, nil
}
