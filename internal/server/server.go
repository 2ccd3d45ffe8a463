package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/karinaconstandache/PhotoBooker/internal/config"
	"github.com/karinaconstandache/PhotoBooker/internal/handler"
	"github.com/karinaconstandache/PhotoBooker/internal/middleware"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	jwtPkg "github.com/karinaconstandache/PhotoBooker/pkg/jwt"
	"go.uber.org/zap"
)

// Uploads are capped at 20 MiB by the portfolio service; the transport
// limit sits above that so oversize files get a proper 400.
const bodyLimit = 32 << 20

type Handlers struct {
	Auth         *handler.AuthHandler
	Photographer *handler.PhotographerHandler
	Portfolio    *handler.PortfolioHandler
}

func NewFiberApp(cfg *config.Config, log *zap.Logger, tokens *jwtPkg.Manager, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "PhotoBooker",
		BodyLimit:    bodyLimit,
		ErrorHandler: handler.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: cfg.ClientOrigin != "*",
	}))
	if cfg.RateLimit.Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.Max,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Too many requests"))
			},
		}))
	}

	if cfg.Storage.Driver == "local" {
		app.Static("/uploads", cfg.Storage.UploadDir, fiber.Static{ByteRange: true})
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRequired := middleware.Auth(tokens)
	photographerOnly := middleware.RequireRole(models.RolePhotographer)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", authRequired, h.Auth.Me)

	photographers := api.Group("/photographers")
	photographers.Get("/", h.Photographer.List)
	photographers.Put("/profile", authRequired, photographerOnly, h.Photographer.UpdateProfile)
	photographers.Delete("/profile", authRequired, photographerOnly, h.Photographer.DeleteProfile)
	photographers.Get("/:id/qrcode", h.Photographer.QRCode)
	photographers.Get("/:id", h.Photographer.Get)

	portfolios := api.Group("/portfolios")
	portfolios.Get("/", h.Portfolio.ListAll)
	portfolios.Get("/my-portfolios", authRequired, photographerOnly, h.Portfolio.ListMine)
	portfolios.Get("/photographer/:id", h.Portfolio.ListByPhotographer)
	portfolios.Delete("/images/:imageId", authRequired, photographerOnly, h.Portfolio.DeleteImage)
	portfolios.Get("/:id", h.Portfolio.Get)
	portfolios.Post("/", authRequired, photographerOnly, h.Portfolio.Create)
	portfolios.Put("/:id", authRequired, photographerOnly, h.Portfolio.Update)
	portfolios.Delete("/:id", authRequired, photographerOnly, h.Portfolio.Delete)
	portfolios.Post("/:id/images", authRequired, photographerOnly, h.Portfolio.UploadImage)

	return app
}
