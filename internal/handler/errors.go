package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/service"
	"go.uber.org/zap"
)

const msgInternal = "An unexpected error occurred"

// statusFor maps service error codes onto HTTP statuses.
func statusFor(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation, service.ErrorCodeConflict:
		return fiber.StatusBadRequest
	case service.ErrorCodeAuthentication:
		return fiber.StatusUnauthorized
	case service.ErrorCodeAuthorization:
		return fiber.StatusForbidden
	case service.ErrorCodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError is the one place service outcomes become responses. Untyped
// errors are logged and answered with a generic 500.
func writeError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	if serviceErr, ok := service.AsError(err); ok {
		status := statusFor(serviceErr.Code)
		if status == fiber.StatusInternalServerError {
			logger.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
			return c.Status(status).JSON(models.ErrorResponse(msgInternal))
		}
		return c.Status(status).JSON(models.ErrorResponse(serviceErr.Message))
	}

	logger.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(msgInternal))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(message))
}

// ErrorHandler renders errors that escape handlers (unknown routes, body
// limit, panics turned into errors by recover) as {message}.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(models.ErrorResponse(fiberErr.Message))
		}
		return writeError(c, logger, err)
	}
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
