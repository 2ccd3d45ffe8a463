package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/karinaconstandache/PhotoBooker/internal/middleware"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/service"
	"go.uber.org/zap"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	logger           *zap.Logger
}

func NewPortfolioHandler(portfolioService *service.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		logger:           logger,
	}
}

func (h *PortfolioHandler) ListAll(c *fiber.Ctx) error {
	portfolios, err := h.portfolioService.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(portfolios)
}

func (h *PortfolioHandler) ListMine(c *fiber.Ctx) error {
	portfolios, err := h.portfolioService.ListMine(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(portfolios)
}

func (h *PortfolioHandler) ListByPhotographer(c *fiber.Ctx) error {
	photographerID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid photographer ID")
	}

	portfolios, err := h.portfolioService.ListByPhotographer(c.UserContext(), photographerID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(portfolios)
}

func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid portfolio ID")
	}

	portfolio, err := h.portfolioService.GetPortfolio(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(portfolio)
}

func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var req models.CreatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	portfolio, err := h.portfolioService.CreatePortfolio(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	c.Location(fmt.Sprintf("/api/portfolios/%d", portfolio.ID))
	return c.Status(fiber.StatusCreated).JSON(portfolio)
}

func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid portfolio ID")
	}

	var req models.UpdatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(c.UserContext(), id, middleware.UserID(c), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(portfolio)
}

func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid portfolio ID")
	}

	if err := h.portfolioService.DeletePortfolio(c.UserContext(), id, middleware.UserID(c)); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImage takes multipart field "file" and optional "displayOrder".
func (h *PortfolioHandler) UploadImage(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid portfolio ID")
	}

	displayOrder := 0
	if raw := c.FormValue("displayOrder"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "displayOrder must be an integer")
		}
		displayOrder = parsed
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}

	src, err := file.Open()
	if err != nil {
		return writeError(c, h.logger, fmt.Errorf("open upload: %w", err))
	}
	defer src.Close()

	image, err := h.portfolioService.UploadImage(c.UserContext(), id, middleware.UserID(c), service.ImageUpload{
		Filename:     file.Filename,
		Size:         file.Size,
		Content:      src,
		DisplayOrder: displayOrder,
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *PortfolioHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, ok := paramID(c, "imageId")
	if !ok {
		return badRequest(c, "Invalid image ID")
	}

	if err := h.portfolioService.DeleteImage(c.UserContext(), imageID, middleware.UserID(c)); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
