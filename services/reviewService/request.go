package reviewService

import (
	"errors"
	"strings"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"gorm.io/gorm"
)

const (
	MinAnswerPoint = 0
	MaxAnswerPoint = 5
)

type CreateRequestInput struct {
	Title        string
	Content      string
	LanguageName string
	ReviewerID   uint
}

// UserSummary is the public part of a user attached to a request
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

type CommentView struct {
	ID        uint        `json:"id"`
	Content   string      `json:"content"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AnswerView struct {
	ID        uint        `json:"id"`
	Content   string      `json:"content"`
	Point     float64     `json:"point"`
	Reviewer  UserSummary `json:"reviewer"`
	CreatedAt time.Time   `json:"createdAt"`
}

// RequestDetail is a review request with its comments and answer
type RequestDetail struct {
	ReviewRequestID uint                       `json:"reviewRequestId"`
	Title           string                     `json:"title"`
	Content         string                     `json:"content"`
	LanguageName    string                     `json:"languageName"`
	Status          models.ReviewRequestStatus `json:"status"`
	CreatedAt       time.Time                  `json:"createdAt"`
	Requester       UserSummary                `json:"requester"`
	Reviewer        UserSummary                `json:"reviewer"`
	Comments        []CommentView              `json:"comments"`
	CommentCount    int                        `json:"commentCount"`
	Answer          *AnswerView                `json:"answer"`
}

func summarize(u models.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Nickname: u.Nickname}
}

// CreateRequest opens a new UNSOLVE review request assigned to a reviewer
func CreateRequest(db *gorm.DB, requesterID uint, in CreateRequestInput) (*models.ReviewRequest, error) {
	if in.ReviewerID == requesterID {
		return nil, utils.NewInvalidParameter("You cannot request a review from yourself!")
	}

	var reviewer models.User
	if err := db.First(&reviewer, in.ReviewerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewInvalidParameter("Reviewer not found!")
		}
		return nil, utils.Internal("Failed to load reviewer!", err)
	}
	if !reviewer.IsReviewer() {
		return nil, utils.NewInvalidParameter("Selected user is not a reviewer!")
	}

	request := models.ReviewRequest{
		RequesterID:  requesterID,
		ReviewerID:   reviewer.ID,
		Title:        strings.TrimSpace(in.Title),
		Content:      in.Content,
		LanguageName: strings.ToUpper(strings.TrimSpace(in.LanguageName)),
		Status:       models.StatusUnsolve,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, utils.Internal("Failed to create review request!", err)
	}
	return &request, nil
}

// GetRequest loads a review request with its comments in id order and its answer
func GetRequest(db *gorm.DB, requestID uint) (*RequestDetail, error) {
	var request models.ReviewRequest
	if err := db.Preload("Requester").Preload("Reviewer").First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Review request not found!")
		}
		return nil, utils.Internal("Failed to load review request!", err)
	}

	var comments []models.ReviewRequestComment
	if err := db.Where("review_request_id = ?", request.ID).
		Preload("User").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, utils.Internal("Failed to load comments!", err)
	}

	detail := &RequestDetail{
		ReviewRequestID: request.ID,
		Title:           request.Title,
		Content:         request.Content,
		LanguageName:    request.LanguageName,
		Status:          request.Status,
		CreatedAt:       request.CreatedAt,
		Requester:       summarize(request.Requester),
		Reviewer:        summarize(request.Reviewer),
		Comments:        make([]CommentView, 0, len(comments)),
		CommentCount:    len(comments),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			Author:    summarize(c.User),
			CreatedAt: c.CreatedAt,
		})
	}

	var answer models.ReviewAnswer
	err := db.Where("review_request_id = ?", request.ID).Preload("Reviewer").First(&answer).Error
	switch {
	case err == nil:
		detail.Answer = &AnswerView{
			ID:        answer.ID,
			Content:   answer.Content,
			Point:     answer.Point,
			Reviewer:  summarize(answer.Reviewer),
			CreatedAt: answer.CreatedAt,
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, utils.Internal("Failed to load answer!", err)
	}

	return detail, nil
}

// AnswerRequest records the assigned reviewer's answer, marks the request SOLVE
// and credits the reviewer, all in one transaction
func AnswerRequest(db *gorm.DB, requestID, reviewerID uint, content string, point float64) (*models.ReviewAnswer, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	if point < MinAnswerPoint || point > MaxAnswerPoint {
		return nil, utils.NewInvalidParameter("Point must be between 0 and 5!")
	}

	answer := models.ReviewAnswer{ReviewRequestID: requestID, ReviewerID: reviewerID, Content: content, Point: point}

	err = db.Transaction(func(tx *gorm.DB) error {
		var request models.ReviewRequest
		if err := findRequest(tx, requestID, &request); err != nil {
			return err
		}
		if request.ReviewerID != reviewerID {
			return utils.NewForbidden("Only the assigned reviewer can answer this request!")
		}
		if request.Status == models.StatusSolve {
			return utils.NewConflict("This request has already been answered!")
		}

		var existing int64
		if err := tx.Model(&models.ReviewAnswer{}).Where("review_request_id = ?", requestID).Count(&existing).Error; err != nil {
			return utils.Internal("Failed to check answers!", err)
		}
		if existing > 0 {
			return utils.NewConflict("This request has already been answered!")
		}

		if err := tx.Create(&answer).Error; err != nil {
			return utils.Internal("Failed to save answer!", err)
		}

		// Conditional on UNSOLVE so the status can only move forward
		res := tx.Model(&models.ReviewRequest{}).
			Where("id = ? AND status = ?", requestID, models.StatusUnsolve).
			Update("status", models.StatusSolve)
		if res.Error != nil {
			return utils.Internal("Failed to update request status!", res.Error)
		}
		if res.RowsAffected != 1 {
			return utils.NewConflict("This request has already been answered!")
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reviewerID).Updates(map[string]interface{}{
			"answer_count": gorm.Expr("answer_count + ?", 1),
			"point":        gorm.Expr("point + ?", point),
		}).Error; err != nil {
			return utils.Internal("Failed to update reviewer stats!", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}
