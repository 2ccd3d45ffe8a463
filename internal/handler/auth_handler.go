package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karinaconstandache/PhotoBooker/internal/middleware"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Me echoes the verified token claims.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
