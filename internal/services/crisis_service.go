package services

import (
	"log/slog"
	"regexp"

	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/models"
)

// CrisisKeywords are phrases in a journal note that trigger a support
// notification. Matching is case-insensitive on word boundaries.
var CrisisKeywords = []string{
	"want to die",
	"hopeless",
	"can't go on",
	"pointless",
	"kill myself",
	"suicide",
	"end it all",
	"hurt myself",
	"no reason to live",
	"better off without me",
}

const crisisSupportMessage = "We noticed you might be going through a difficult time. " +
	"You're not alone. If you need someone to talk to, please reach out to a " +
	"crisis helpline or a person you trust. 💙"

// CrisisDetector scans journal notes for signs of distress and files an
// urgent support notification when one matches.
type CrisisDetector struct {
	patterns      []*regexp.Regexp
	notifications NotificationSink
}

func NewCrisisDetector(notifications NotificationSink) *CrisisDetector {
	patterns := make([]*regexp.Regexp, 0, len(CrisisKeywords))
	for _, kw := range CrisisKeywords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err == nil {
			patterns = append(patterns, re)
		}
	}
	return &CrisisDetector{patterns: patterns, notifications: notifications}
}

// Matches reports whether the note contains a crisis keyword.
func (d *CrisisDetector) Matches(note string) bool {
	if note == "" {
		return false
	}
	for _, re := range d.patterns {
		if re.MatchString(note) {
			return true
		}
	}
	return false
}

// Check scans the note and, on a match, creates one urgent notification.
// Detection must never block journaling, so notification failures are
// logged and swallowed.
func (d *CrisisDetector) Check(userID uuid.UUID, note string) bool {
	if !d.Matches(note) {
		return false
	}

	notification := &models.Notification{
		UserID:   userID,
		Type:     models.NotificationTypeCrisisSupport,
		Title:    "Support Resources Available",
		Message:  crisisSupportMessage,
		Priority: models.NotificationPriorityUrgent,
	}
	if err := d.notifications.Create(notification); err != nil {
		slog.Error("crisis support notification failed", "error", err)
	}
	return true
}
