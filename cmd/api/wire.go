//go:build wireinject

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/karinaconstandache/PhotoBooker/internal/config"
	"github.com/karinaconstandache/PhotoBooker/internal/handler"
	"github.com/karinaconstandache/PhotoBooker/internal/repository"
	"github.com/karinaconstandache/PhotoBooker/internal/server"
	"github.com/karinaconstandache/PhotoBooker/internal/service"
	"github.com/karinaconstandache/PhotoBooker/pkg/database"
	"github.com/karinaconstandache/PhotoBooker/pkg/email"
	"github.com/karinaconstandache/PhotoBooker/pkg/storage"
	"github.com/karinaconstandache/PhotoBooker/pkg/utils"
	"go.uber.org/zap"
)

func InitializeAPI(cfg *config.Config, log *zap.Logger) (*fiber.App, error) {
	wire.Build(
		// Infrastructure
		database.NewDatabase,
		storage.NewObjectStorage,
		email.NewSender,
		provideTokenManager,
		provideQRService,
		utils.NewValidator,

		// Repositories
		repository.NewUserRepository,
		repository.NewPortfolioRepository,

		// Services
		service.NewAuthService,
		service.NewPhotographerService,
		service.NewPortfolioService,

		// Handlers
		handler.NewAuthHandler,
		handler.NewPhotographerHandler,
		handler.NewPortfolioHandler,
		wire.Struct(new(server.Handlers), "*"),

		// App
		server.NewFiberApp,
	)
	return nil, nil
}
