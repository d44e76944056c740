package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type MoodHandler struct {
	moodService  *services.MoodService
	statsService *services.StatsService
	cat          *catalog.Catalog
	identity     *identity.Resolver
}

func NewMoodHandler(moodService *services.MoodService, statsService *services.StatsService, cat *catalog.Catalog, resolver *identity.Resolver) *MoodHandler {
	return &MoodHandler{
		moodService:  moodService,
		statsService: statsService,
		cat:          cat,
		identity:     resolver,
	}
}

// Catalog returns the static mood palette.
func (h *MoodHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"moods": h.cat.Moods()})
}

func (h *MoodHandler) Create(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, unlocked, err := h.moodService.RecordMood(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMood),
			errors.Is(err, services.ErrInvalidIntensity),
			errors.Is(err, services.ErrInvalidDate):
			return badRequest(c, err.Error())
		default:
			return internalError(c, "Failed to save mood entry")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry":                 entry,
		"achievements_unlocked": unlocked,
	})
}

func (h *MoodHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return badRequest(c, "from must be in YYYY-MM-DD format")
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return badRequest(c, "to must be in YYYY-MM-DD format")
		}
		to = &t
	}

	entries, err := h.moodService.List(userID, from, to, c.QueryInt("limit"))
	if err != nil {
		return internalError(c, "Failed to load mood entries")
	}

	return c.JSON(fiber.Map{"entries": entries, "count": len(entries)})
}

func (h *MoodHandler) Get(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	entry, err := h.moodService.GetByID(userID, entryID)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, "Mood entry not found")
		}
		return internalError(c, "Failed to load mood entry")
	}

	return c.JSON(entry)
}

func (h *MoodHandler) Update(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	var req dto.UpdateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.moodService.Update(userID, entryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return notFound(c, "Mood entry not found")
		case errors.Is(err, services.ErrInvalidMood),
			errors.Is(err, services.ErrInvalidIntensity):
			return badRequest(c, err.Error())
		default:
			return internalError(c, "Failed to update mood entry")
		}
	}

	return c.JSON(entry)
}

func (h *MoodHandler) Delete(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry id")
	}

	if err := h.moodService.Delete(userID, entryID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, "Mood entry not found")
		}
		return internalError(c, "Failed to delete mood entry")
	}

	return c.JSON(fiber.Map{"message": "Mood entry deleted"})
}

func (h *MoodHandler) Stats(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	report, err := h.statsService.GetStats(userID)
	if err != nil {
		return internalError(c, "Failed to compute stats")
	}
	return c.JSON(report)
}

// Insights serves the insight messages on their own, with an optional
// window query param bounding how much recent history feeds the rules.
func (h *MoodHandler) Insights(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	insights, err := h.statsService.GetInsights(userID, c.QueryInt("window"))
	if err != nil {
		return internalError(c, "Failed to compute insights")
	}
	return c.JSON(fiber.Map{"insights": insights})
}

func (h *MoodHandler) WeeklyReport(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	report, err := h.statsService.GetWeeklyReport(userID)
	if err != nil {
		return internalError(c, "Failed to compute weekly report")
	}
	return c.JSON(report)
}

func (h *MoodHandler) Export(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	data, err := h.moodService.ExportCSV(userID)
	if err != nil {
		return internalError(c, "Failed to export journal")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mood_journal.csv"`)
	return c.SendString(data)
}
