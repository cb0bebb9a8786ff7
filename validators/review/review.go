package reviewValidator

import (
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateRequestRequest struct {
	Title        string `json:"title" validate:"notblank,max=200"`
	Content      string `json:"content" validate:"notblank"`
	LanguageName string `json:"languageName" validate:"notblank,max=40"`
	ReviewerID   uint   `json:"reviewerId" validate:"required"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"notblank,max=1000"`
}

type AnswerRequest struct {
	Content string   `json:"content" validate:"notblank"`
	Point   *float64 `json:"point" validate:"required,gte=0,lte=5"`
}

// ListQuery carries the optional paging parameters of the listing endpoints
type ListQuery struct {
	Page   int    `query:"page"`
	Size   int    `query:"size"`
	SortBy string `query:"sortBy"`
	IsAsc  bool   `query:"isAsc"`
	Status string `query:"status"`
}

func body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// CreateRequest validates a new review request body
func CreateRequest() fiber.Handler {
	return body[CreateRequestRequest]("validatedReviewRequest")
}

// AddComment validates the body of a new comment
func AddComment() fiber.Handler {
	return body[CommentRequest]("validatedComment")
}

// UpdateComment validates the body of a comment edit
func UpdateComment() fiber.Handler {
	return body[CommentRequest]("validatedComment")
}

// Answer validates a reviewer's answer
func Answer() fiber.Handler {
	return body[AnswerRequest]("validatedAnswer")
}

// ListRequests parses the listing query string; values are normalized by the service
func ListRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
