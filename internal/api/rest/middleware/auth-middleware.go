package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/services"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// username in the request locals. Applied per route group, not globally.
func AuthMiddleware(auth services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))

		username, err := auth.ValidateAccessToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).SendString("Invalid or expired token")
		}

		ctx.Locals("username", username)
		return ctx.Next()
	}
}
