package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfFriend        = errors.New("cannot friend yourself")
	ErrFriendshipExists  = errors.New("friend request already exists")
	ErrRequestNotFound   = errors.New("friend request not found")
	ErrFriendUserMissing = errors.New("user not found")
)

type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

// Request creates a pending friendship from the caller to another user.
func (s *FriendService) Request(userID uuid.UUID, friendEmail string) (*models.Friendship, error) {
	var friend models.User
	if err := s.db.Where("email = ?", friendEmail).First(&friend).Error; err != nil {
		return nil, ErrFriendUserMissing
	}
	if friend.ID == userID {
		return nil, ErrSelfFriend
	}

	var existing models.Friendship
	err := s.db.Where(
		"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friend.ID, friend.ID, userID,
	).First(&existing).Error
	if err == nil {
		return nil, ErrFriendshipExists
	}

	friendship := models.Friendship{
		ID:       uuid.New(),
		UserID:   userID,
		FriendID: friend.ID,
		Status:   models.FriendStatusPending,
	}
	if err := s.db.Create(&friendship).Error; err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}
	return &friendship, nil
}

// Accept confirms a pending request addressed to the caller.
func (s *FriendService) Accept(userID, requestID uuid.UUID) error {
	result := s.db.Model(&models.Friendship{}).
		Where("id = ? AND friend_id = ? AND status = ?", requestID, userID, models.FriendStatusPending).
		Update("status", models.FriendStatusAccepted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// List returns accepted friendships in either direction plus pending
// requests addressed to the caller.
func (s *FriendService) List(userID uuid.UUID) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.db.Where(
		"((user_id = ? OR friend_id = ?) AND status = ?) OR (friend_id = ? AND status = ?)",
		userID, userID, models.FriendStatusAccepted,
		userID, models.FriendStatusPending,
	).Order("created_at DESC").Find(&friendships).Error
	return friendships, err
}

// Remove deletes a friendship the caller is part of, accepted or pending.
func (s *FriendService) Remove(userID, friendshipID uuid.UUID) error {
	result := s.db.Where(
		"id = ? AND (user_id = ? OR friend_id = ?)",
		friendshipID, userID, userID,
	).Delete(&models.Friendship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
