package main

import (
	"github.com/karinaconstandache/PhotoBooker/internal/config"
	jwtPkg "github.com/karinaconstandache/PhotoBooker/pkg/jwt"
	"github.com/karinaconstandache/PhotoBooker/pkg/logger"
	"github.com/karinaconstandache/PhotoBooker/pkg/qrcode"
	"go.uber.org/zap"
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.AppEnv, cfg.LogLevel)
}

func provideTokenManager(cfg *config.Config) *jwtPkg.Manager {
	return jwtPkg.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
}

// Share codes point at the client application, not the API.
func provideQRService(cfg *config.Config) *qrcode.QRService {
	return qrcode.NewQRService(cfg.ClientOrigin)
}
