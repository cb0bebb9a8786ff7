package userController

import (
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/services/authService"
	"github.com/kimdh-hi/smtc-backend-deploy/services/reviewService"
	"github.com/kimdh-hi/smtc-backend-deploy/services/userService"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"
	reviewValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/review"
	userValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// RequestedReviews lists the review requests the caller authored
func RequestedReviews(c *fiber.Ctx) error {
	return listRequests(c, reviewService.ScopeAuthored)
}

// ReceivedReviews lists the review requests assigned to the caller
func ReceivedReviews(c *fiber.Ctx) error {
	return listRequests(c, reviewService.ScopeReceived)
}

func listRequests(c *fiber.Ctx, scope reviewService.Scope) error {
	reqData, ok := c.Locals("validatedList").(*reviewValidator.ListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page, err := reviewService.ListRequests(database.Database.Db.WithContext(c.UserContext()), middleware.CallerID(c), scope, reviewService.ListQuery{
		Page:   reqData.Page,
		Size:   reqData.Size,
		SortBy: reqData.SortBy,
		IsAsc:  reqData.IsAsc,
		Status: reqData.Status,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.ReviewListingCounter.WithLabelValues(scope.String()).Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review requests fetched!", page)
}

// SearchByLanguage lists reviewers speaking the requested language
func SearchByLanguage(c *fiber.Ctx) error {
	language, _ := c.Locals("validatedLanguage").(string)

	reviewers, err := userService.SearchReviewersByLanguage(database.Database.Db.WithContext(c.UserContext()), language)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewers fetched!", reviewers)
}

// UpdateLanguages replaces the caller's languages
func UpdateLanguages(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLanguages").(*userValidator.UpdateLanguagesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userID := middleware.CallerID(c)
	profile, err := userService.UpdateLanguages(database.Database.Db.WithContext(c.UserContext()), userID, reqData.Languages)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	authService.ForgetCaller(userID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Languages updated!", profile)
}

// Ranking lists the top reviewers for a period
func Ranking(c *fiber.Ctx) error {
	period, _ := c.Locals("validatedPeriod").(string)

	entries, err := userService.Ranking(database.Database.Db.WithContext(c.UserContext()), period, time.Now())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ranking fetched!", entries)
}
