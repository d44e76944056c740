package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService manages per-user notification records.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Create persists a notification. Callers treating delivery as
// fire-and-forget are expected to log and swallow the returned error.
func (s *NotificationService) Create(n *models.Notification) error {
	return s.db.Create(n).Error
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = false")
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
