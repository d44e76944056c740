package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidTechnique = errors.New("unknown meditation technique")

// MeditationTechniques are the guided session types the app offers.
var MeditationTechniques = []string{
	"breathing",
	"body_scan",
	"loving_kindness",
	"mindfulness",
	"visualization",
}

type MeditationService struct {
	db *gorm.DB
}

func NewMeditationService(db *gorm.DB) *MeditationService {
	return &MeditationService{db: db}
}

// Record stores a finished (or abandoned) session.
func (s *MeditationService) Record(userID uuid.UUID, req *dto.CreateMeditationSessionRequest) (*models.MeditationSession, error) {
	if !validTechnique(req.Technique) {
		return nil, ErrInvalidTechnique
	}
	if req.Duration < 0 {
		return nil, errors.New("duration cannot be negative")
	}

	completion := req.CompletionPercentage
	if completion < 0 {
		completion = 0
	}
	if completion > 100 {
		completion = 100
	}

	session := models.MeditationSession{
		ID:                   uuid.New(),
		UserID:               userID,
		Technique:            req.Technique,
		Duration:             req.Duration,
		Completed:            req.Completed,
		CompletionPercentage: completion,
		MoodBefore:           req.MoodBefore,
		MoodAfter:            req.MoodAfter,
		Notes:                req.Notes,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to record meditation session: %w", err)
	}
	return &session, nil
}

func (s *MeditationService) List(userID uuid.UUID, limit int) ([]models.MeditationSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var sessions []models.MeditationSession
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

func validTechnique(technique string) bool {
	for _, t := range MeditationTechniques {
		if t == technique {
			return true
		}
	}
	return false
}
