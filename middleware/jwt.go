package middleware

import (
	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/services/authService"

	"github.com/gofiber/fiber/v2"
)

// JWTMiddleware resolves the bearer token and stores the caller in the request context
func JWTMiddleware(c *fiber.Ctx) error {
	caller, err := authService.ResolveCaller(database.Database.Db.WithContext(c.UserContext()), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return ErrorResponse(c, err)
	}

	c.Locals("userId", caller.UserID)
	c.Locals("username", caller.Username)
	c.Locals("role", caller.Role)

	return c.Next()
}

// CallerID returns the id stored by JWTMiddleware, 0 when absent
func CallerID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userId").(uint)
	return userID
}

// CallerRole returns the role stored by JWTMiddleware
func CallerRole(c *fiber.Ctx) models.UserRole {
	role, _ := c.Locals("role").(models.UserRole)
	return role
}
