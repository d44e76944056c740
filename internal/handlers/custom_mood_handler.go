package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type CustomMoodHandler struct {
	customMoodService *services.CustomMoodService
	identity          *identity.Resolver
}

func NewCustomMoodHandler(customMoodService *services.CustomMoodService, resolver *identity.Resolver) *CustomMoodHandler {
	return &CustomMoodHandler{customMoodService: customMoodService, identity: resolver}
}

func (h *CustomMoodHandler) Create(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateCustomMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	mood, err := h.customMoodService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMoodLabel):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrCustomMoodExists):
			return conflict(c, err.Error())
		default:
			return internalError(c, "Failed to create custom mood")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(mood)
}

func (h *CustomMoodHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	moods, err := h.customMoodService.List(userID)
	if err != nil {
		return internalError(c, "Failed to load custom moods")
	}

	return c.JSON(fiber.Map{"custom_moods": moods, "count": len(moods)})
}

func (h *CustomMoodHandler) Delete(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	moodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid custom mood id")
	}

	if err := h.customMoodService.Delete(userID, moodID); err != nil {
		if errors.Is(err, services.ErrCustomMoodNotFound) {
			return notFound(c, "Custom mood not found")
		}
		return internalError(c, "Failed to delete custom mood")
	}

	return c.JSON(fiber.Map{"message": "Custom mood deleted"})
}
