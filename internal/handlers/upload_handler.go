package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodverse/moodverse-backend/internal/dto"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/services"
)

type UploadHandler struct {
	uploadService *services.UploadService
	identity      *identity.Resolver
}

func NewUploadHandler(uploadService *services.UploadService, resolver *identity.Resolver) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, identity: resolver}
}

// Upload accepts a multipart "file" field and returns the stored URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	userID, err := h.identity.Resolve(c)
	if err != nil {
		return unauthorized(c)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "A file field is required")
	}

	f, err := header.Open()
	if err != nil {
		return internalError(c, "Failed to read upload")
	}
	defer f.Close()

	url, err := h.uploadService.Save(userID, header.Filename, header.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUploadTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUploadUnsupported):
			return badRequest(c, err.Error())
		default:
			return internalError(c, "Failed to store upload")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}
