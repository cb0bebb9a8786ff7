package userValidator

import (
	"strings"

	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateLanguagesRequest struct {
	Languages []string `json:"languages" validate:"required,min=1,max=20,dive,notblank,max=40"`
}

// SearchByLanguage requires the language query parameter
func SearchByLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		language := strings.TrimSpace(c.Query("language"))
		if language == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"language": "language is required!"})
		}

		c.Locals("validatedLanguage", language)
		return c.Next()
	}
}

// UpdateLanguages validates a reviewer's language list
func UpdateLanguages() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLanguagesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLanguages", reqData)
		return c.Next()
	}
}

// Ranking accepts period=all|month|week
func Ranking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := strings.ToLower(c.Query("period", "all"))
		valid := map[string]bool{"all": true, "month": true, "week": true}
		if !valid[period] {
			return middleware.ValidationErrorResponse(c, map[string]string{"period": "Invalid period! Must be one of: all, month, week."})
		}

		c.Locals("validatedPeriod", period)
		return c.Next()
	}
}
