package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
	identity           *identity.Resolver
}

func NewAchievementHandler(achievementService *services.AchievementService, resolver *identity.Resolver) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, identity: resolver}
}

// List re-evaluates pending achievements, then returns every definition with
// the caller's unlock state. Fresh unlocks ride along in the response.
func (h *AchievementHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	unlocked, err := h.achievementService.Evaluate(userID)
	if err != nil {
		return internalError(c, "Failed to evaluate achievements")
	}

	statuses, err := h.achievementService.ListWithStatus(userID)
	if err != nil {
		return internalError(c, "Failed to load achievements")
	}

	return c.JSON(fiber.Map{
		"achievements":   statuses,
		"newly_unlocked": unlocked,
	})
}
