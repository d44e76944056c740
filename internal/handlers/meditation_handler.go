package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type MeditationHandler struct {
	meditationService *services.MeditationService
	identity          *identity.Resolver
}

func NewMeditationHandler(meditationService *services.MeditationService, resolver *identity.Resolver) *MeditationHandler {
	return &MeditationHandler{meditationService: meditationService, identity: resolver}
}

func (h *MeditationHandler) Techniques(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"techniques": services.MeditationTechniques})
}

func (h *MeditationHandler) Create(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMeditationSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	session, err := h.meditationService.Record(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTechnique) {
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to record meditation session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *MeditationHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	sessions, err := h.meditationService.List(userID, c.QueryInt("limit"))
	if err != nil {
		return internalError(c, "Failed to load meditation sessions")
	}

	return c.JSON(fiber.Map{"sessions": sessions, "count": len(sessions)})
}
