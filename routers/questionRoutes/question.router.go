package questionRoutes

import (
	reviewController "github.com/kimdh-hi/smtc-backend-deploy/controllers/review"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	reviewValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupQuestionRoutes(app *fiber.App) {
	questionGroup := app.Group("/question")

	// Comments (specific routes MUST come before /:questionId)
	questionGroup.Put("/comment/:commentId", middleware.JWTMiddleware, reviewValidator.UpdateComment(), reviewController.UpdateComment)
	questionGroup.Delete("/comment/:commentId", middleware.JWTMiddleware, reviewController.DeleteComment)

	// Review requests
	questionGroup.Post("/", middleware.JWTMiddleware, reviewValidator.CreateRequest(), reviewController.CreateRequest)
	questionGroup.Get("/:questionId", reviewController.GetRequest)
	questionGroup.Post("/:questionId/comment", middleware.JWTMiddleware, reviewValidator.AddComment(), reviewController.AddComment)
	questionGroup.Post("/:questionId/answer", middleware.JWTMiddleware, middleware.RequireRole(models.RoleReviewer), reviewValidator.Answer(), reviewController.AnswerRequest)
}
