package routers

import (
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/routers/authRoutes"
	"github.com/kimdh-hi/smtc-backend-deploy/routers/questionRoutes"
	"github.com/kimdh-hi/smtc-backend-deploy/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the fiber application with every middleware and route group
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "smtc-backend",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))
	app.Use(middleware.MetricsMiddleware)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	SetupRoutes(app)
	return app
}

func SetupRoutes(app *fiber.App) {
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	questionRoutes.SetupQuestionRoutes(app)
}
