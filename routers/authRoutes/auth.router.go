package authRoutes

import (
	authController "github.com/kimdh-hi/smtc-backend-deploy/controllers/auth"
	authValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
