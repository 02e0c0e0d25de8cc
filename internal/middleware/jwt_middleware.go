package middleware

import (
	"strings"

	"stylehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware gating protected routes. The
// Authorization header carries the raw signed token; a leading
// "Bearer " prefix is accepted and stripped.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied",
			})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("role", claims["role"])

		// Continue to the next handler
		return c.Next()
	}
}

// RequireRole checks the role claim injected by AuthRequired. It is the
// hook where elevated roles would slot in; today every issued token
// carries the customer role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _ := c.Locals("role").(string)
		if claim != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient role",
			})
		}
		return c.Next()
	}
}
