package reviewService

import (
	"errors"
	"strings"

	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"gorm.io/gorm"
)

func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", utils.NewInvalidParameter("Content is required!")
	}
	return content, nil
}

// AddComment attaches a new comment by authorID to the review request
func AddComment(db *gorm.DB, requestID, authorID uint, content string) (*models.ReviewRequestComment, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}

	comment := models.ReviewRequestComment{ReviewRequestID: requestID, UserID: authorID, Content: content}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := findRequest(tx, requestID, &models.ReviewRequest{}); err != nil {
			return err
		}
		if err := tx.Create(&comment).Error; err != nil {
			return utils.Internal("Failed to add comment!", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment replaces the content of a comment owned by callerID
func UpdateComment(db *gorm.DB, commentID, callerID uint, content string) (*models.ReviewRequestComment, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}

	var comment models.ReviewRequestComment
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := findOwnedComment(tx, commentID, callerID, &comment); err != nil {
			return err
		}
		if err := tx.Model(&comment).Update("content", content).Error; err != nil {
			return utils.Internal("Failed to update comment!", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment owned by callerID
func DeleteComment(db *gorm.DB, commentID, callerID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var comment models.ReviewRequestComment
		if err := findOwnedComment(tx, commentID, callerID, &comment); err != nil {
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return utils.Internal("Failed to delete comment!", err)
		}
		return nil
	})
}

func findOwnedComment(tx *gorm.DB, commentID, callerID uint, comment *models.ReviewRequestComment) error {
	if err := tx.First(comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("Comment not found!")
		}
		return utils.Internal("Failed to load comment!", err)
	}
	if comment.UserID != callerID {
		return utils.NewForbidden("You can only modify your own comments!")
	}
	return nil
}

func findRequest(tx *gorm.DB, requestID uint, request *models.ReviewRequest) error {
	if err := tx.First(request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("Review request not found!")
		}
		return utils.Internal("Failed to load review request!", err)
	}
	return nil
}
