package middleware

import (
	"strconv"

	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware counts every request by method and final status code
func MetricsMiddleware(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
	}
	utils.HTTPRequestCounter.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
	return err
}
