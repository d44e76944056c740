package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type FriendHandler struct {
	friendService *services.FriendService
	identity      *identity.Resolver
}

func NewFriendHandler(friendService *services.FriendService, resolver *identity.Resolver) *FriendHandler {
	return &FriendHandler{friendService: friendService, identity: resolver}
}

func (h *FriendHandler) Request(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return badRequest(c, "Friend email is required")
	}

	friendship, err := h.friendService.Request(userID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFriendUserMissing):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrSelfFriend):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrFriendshipExists):
			return conflict(c, err.Error())
		default:
			return internalError(c, "Failed to send friend request")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	if err := h.friendService.Accept(userID, requestID); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return notFound(c, "Friend request not found")
		}
		return internalError(c, "Failed to accept friend request")
	}

	return c.JSON(fiber.Map{"message": "Friend request accepted"})
}

func (h *FriendHandler) List(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	friendships, err := h.friendService.List(userID)
	if err != nil {
		return internalError(c, "Failed to load friends")
	}

	return c.JSON(fiber.Map{"friends": friendships, "count": len(friendships)})
}

func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	friendshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid friendship id")
	}

	if err := h.friendService.Remove(userID, friendshipID); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return notFound(c, "Friendship not found")
		}
		return internalError(c, "Failed to remove friend")
	}

	return c.JSON(fiber.Map{"message": "Friend removed"})
}
