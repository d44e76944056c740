package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	identity            *identity.Resolver
}

func NewNotificationHandler(notificationService *services.NotificationService, resolver *identity.Resolver) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, identity: resolver}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	unreadOnly := c.QueryBool("unread")
	notifications, err := h.notificationService.List(userID, unreadOnly, c.QueryInt("limit"))
	if err != nil {
		return internalError(c, "Failed to load notifications")
	}

	return c.JSON(fiber.Map{"notifications": notifications, "count": len(notifications)})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(userID, notificationID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return notFound(c, "Notification not found")
		}
		return internalError(c, "Failed to update notification")
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
