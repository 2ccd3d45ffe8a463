package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/karinaconstandache/PhotoBooker/internal/models"
	jwtPkg "github.com/karinaconstandache/PhotoBooker/pkg/jwt"
)

// Locals keys set by Auth.
const (
	LocalUserID    = "userID"
	LocalUsername  = "username"
	LocalFirstName = "firstName"
	LocalLastName  = "lastName"
	LocalRole      = "role"
)

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(message))
}

// Auth requires a valid "Authorization: Bearer <token>" header.
func Auth(tokens *jwtPkg.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return unauthorized(c, "Invalid authorization header format")
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, claims.Name)
		c.Locals(LocalFirstName, claims.GivenName)
		c.Locals(LocalLastName, claims.FamilyName)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if actual, _ := c.Locals(LocalRole).(string); actual != role.String() {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You do not have access to this resource"))
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller, or 0 outside Auth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalUserID).(uint)
	return id
}

func CurrentUser(c *fiber.Ctx) models.CurrentUser {
	str := func(key string) string {
		v, _ := c.Locals(key).(string)
		return v
	}
	return models.CurrentUser{
		UserID:    strconv.FormatUint(uint64(UserID(c)), 10),
		Username:  str(LocalUsername),
		FirstName: str(LocalFirstName),
		LastName:  str(LocalLastName),
		Role:      str(LocalRole),
	}
}
