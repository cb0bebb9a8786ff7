package reviewController

import (
	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/services/reviewService"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"
	reviewValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/review"

	"github.com/gofiber/fiber/v2"
)

func AddComment(c *fiber.Ctx) error {
	requestID, err := pathID(c, "questionId")
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	reqData, ok := c.Locals("validatedComment").(*reviewValidator.CommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment, err := reviewService.AddComment(database.Database.Db.WithContext(c.UserContext()), requestID, middleware.CallerID(c), reqData.Content)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.ReviewCommentCounter.WithLabelValues("add").Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment added!", fiber.Map{
		"commentId": comment.ID,
		"content":   comment.Content,
	})
}

func UpdateComment(c *fiber.Ctx) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	reqData, ok := c.Locals("validatedComment").(*reviewValidator.CommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment, err := reviewService.UpdateComment(database.Database.Db.WithContext(c.UserContext()), commentID, middleware.CallerID(c), reqData.Content)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.ReviewCommentCounter.WithLabelValues("update").Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated!", fiber.Map{
		"commentId": comment.ID,
		"content":   comment.Content,
	})
}

func DeleteComment(c *fiber.Ctx) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := reviewService.DeleteComment(database.Database.Db.WithContext(c.UserContext()), commentID, middleware.CallerID(c)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	utils.ReviewCommentCounter.WithLabelValues("delete").Inc()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted!", nil)
}
