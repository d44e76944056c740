package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCustomMoodExists   = errors.New("mood id already exists")
	ErrCustomMoodNotFound = errors.New("custom mood not found")
	ErrInvalidMoodLabel   = errors.New("label is required")
)

var moodIDSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// CustomMoodService manages per-user extensions of the mood catalog.
type CustomMoodService struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewCustomMoodService(db *gorm.DB, cat *catalog.Catalog) *CustomMoodService {
	return &CustomMoodService{db: db, cat: cat}
}

// Create registers a custom mood. The id is derived from the label and must
// not shadow a catalog mood or an existing custom one.
func (s *CustomMoodService) Create(userID uuid.UUID, req *dto.CreateCustomMoodRequest) (*models.CustomMood, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, ErrInvalidMoodLabel
	}

	moodID := moodIDFromLabel(label)
	if moodID == "" {
		return nil, ErrInvalidMoodLabel
	}
	if _, exists := s.cat.Mood(moodID); exists {
		return nil, ErrCustomMoodExists
	}

	intensity := req.Intensity
	if intensity < 1 || intensity > 5 {
		intensity = 3
	}

	category := req.Category
	switch category {
	case catalog.CategoryPositive, catalog.CategoryNeutral, catalog.CategoryNegative:
	default:
		category = catalog.CategoryNeutral
	}

	mood := models.CustomMood{
		ID:        uuid.New(),
		UserID:    userID,
		MoodID:    moodID,
		Emoji:     req.Emoji,
		Label:     label,
		Color:     req.Color,
		Particles: req.Particles,
		Intensity: intensity,
		Category:  category,
	}

	err := s.db.Create(&mood).Error
	if err != nil {
		var existing models.CustomMood
		if s.db.Where("user_id = ? AND mood_id = ?", userID, moodID).First(&existing).Error == nil {
			return nil, ErrCustomMoodExists
		}
		return nil, fmt.Errorf("failed to create custom mood: %w", err)
	}
	return &mood, nil
}

func (s *CustomMoodService) List(userID uuid.UUID) ([]models.CustomMood, error) {
	var moods []models.CustomMood
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&moods).Error
	return moods, err
}

func (s *CustomMoodService) Delete(userID, moodID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", moodID, userID).Delete(&models.CustomMood{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomMoodNotFound
	}
	return nil
}

// moodIDFromLabel lowercases the label and collapses anything that is not
// a letter or digit into single underscores.
func moodIDFromLabel(label string) string {
	id := moodIDSanitizer.ReplaceAllString(strings.ToLower(label), "_")
	return strings.Trim(id, "_")
}
