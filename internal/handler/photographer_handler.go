package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/karinaconstandache/PhotoBooker/internal/middleware"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/service"
	"github.com/karinaconstandache/PhotoBooker/pkg/qrcode"
	"go.uber.org/zap"
)

type PhotographerHandler struct {
	photographerService *service.PhotographerService
	logger              *zap.Logger
}

func NewPhotographerHandler(photographerService *service.PhotographerService, logger *zap.Logger) *PhotographerHandler {
	return &PhotographerHandler{
		photographerService: photographerService,
		logger:              logger,
	}
}

func (h *PhotographerHandler) List(c *fiber.Ctx) error {
	photographers, err := h.photographerService.ListPhotographers(c.UserContext())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(photographers)
}

func (h *PhotographerHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photographer ID")
	}

	photographer, err := h.photographerService.GetPhotographer(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(photographer)
}

func (h *PhotographerHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	photographer, err := h.photographerService.UpdateOwnProfile(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(photographer)
}

func (h *PhotographerHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.photographerService.DeleteOwnAccount(c.UserContext(), middleware.UserID(c)); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PhotographerHandler) QRCode(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photographer ID")
	}

	size := qrcode.DefaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "size must be an integer")
		}
		size = parsed
	}

	png, err := h.photographerService.ProfileQRCode(c.UserContext(), id, size)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}
