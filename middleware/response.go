package middleware

import (
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// StatusFor maps a service error kind onto an HTTP status code
func StatusFor(kind utils.ErrorKind) int {
	switch kind {
	case utils.KindUnauthorized:
		return fiber.StatusUnauthorized
	case utils.KindForbidden:
		return fiber.StatusForbidden
	case utils.KindNotFound:
		return fiber.StatusNotFound
	case utils.KindInvalidParameter:
		return fiber.StatusBadRequest
	case utils.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse writes a service error; only internal failures are logged
func ErrorResponse(c *fiber.Ctx, err error) error {
	kind := utils.KindOf(err)
	if kind == utils.KindInternal {
		utils.Log.WithError(err).
			WithField("method", c.Method()).
			WithField("path", c.Path()).
			Error("request failed")
	}
	return JsonResponse(c, StatusFor(kind), false, utils.MessageOf(err), nil)
}
