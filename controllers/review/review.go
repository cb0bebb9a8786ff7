package reviewController

import (
	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/services/reviewService"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"
	reviewValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/review"

	"github.com/gofiber/fiber/v2"
)

// pathID reads a positive numeric path parameter
func pathID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, utils.NewInvalidParameter("Invalid " + name + "!")
	}
	return uint(id), nil
}

// CreateRequest opens a review request for the caller
func CreateRequest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReviewRequest").(*reviewValidator.CreateRequestRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := reviewService.CreateRequest(database.Database.Db.WithContext(c.UserContext()), middleware.CallerID(c), reviewService.CreateRequestInput{
		Title:        reqData.Title,
		Content:      reqData.Content,
		LanguageName: reqData.LanguageName,
		ReviewerID:   reqData.ReviewerID,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review request created!", fiber.Map{
		"reviewRequestId": request.ID,
		"status":          request.Status,
	})
}

// GetRequest returns a review request with its comments and answer
func GetRequest(c *fiber.Ctx) error {
	requestID, err := pathID(c, "questionId")
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	detail, err := reviewService.GetRequest(database.Database.Db.WithContext(c.UserContext()), requestID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review request fetched!", detail)
}

// AnswerRequest lets the assigned reviewer answer
func AnswerRequest(c *fiber.Ctx) error {
	requestID, err := pathID(c, "questionId")
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	reqData, ok := c.Locals("validatedAnswer").(*reviewValidator.AnswerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answer, err := reviewService.AnswerRequest(database.Database.Db.WithContext(c.UserContext()), requestID, middleware.CallerID(c), reqData.Content, *reqData.Point)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.ReviewAnswerCounter.Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer registered!", fiber.Map{
		"answerId":        answer.ID,
		"reviewRequestId": answer.ReviewRequestID,
		"point":           answer.Point,
	})
}
