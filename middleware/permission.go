package middleware

import (
	"github.com/kimdh-hi/smtc-backend-deploy/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the caller holds the role.
// It must run after JWTMiddleware.
func RequireRole(role models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CallerID(c) == 0 {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}
		if CallerRole(c) != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}
