package userRoutes

import (
	userController "github.com/kimdh-hi/smtc-backend-deploy/controllers/userControllers"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	reviewValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/review"
	userValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	// Public
	userGroup.Get("/language", userValidator.SearchByLanguage(), userController.SearchByLanguage)
	userGroup.Get("/ranking", userValidator.Ranking(), userController.Ranking)

	// Listings
	userGroup.Get("/requests", middleware.JWTMiddleware, reviewValidator.ListRequests(), userController.RequestedReviews)
	userGroup.Get("/received", middleware.JWTMiddleware, reviewValidator.ListRequests(), userController.ReceivedReviews)

	// Reviewer profile
	userGroup.Put("/languages", middleware.JWTMiddleware, middleware.RequireRole(models.RoleReviewer), userValidator.UpdateLanguages(), userController.UpdateLanguages)
}
