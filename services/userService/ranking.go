package userService

import (
	"math"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

const rankingLimit = 10

type RankingEntry struct {
	UserID      uint    `json:"userId"`
	Username    string  `json:"username"`
	Nickname    string  `json:"nickname"`
	Point       float64 `json:"point"`
	AnswerCount int64   `json:"answerCount"`
}

// periodStart returns the lower bound for a ranking period, zero for "all"
func periodStart(period string, at time.Time) (time.Time, error) {
	switch period {
	case "", "all":
		return time.Time{}, nil
	case "month":
		return now.With(at).BeginningOfMonth(), nil
	case "week":
		return now.With(at).BeginningOfWeek(), nil
	}
	return time.Time{}, utils.NewInvalidParameter("Invalid period! Must be one of: all, month, week.")
}

// Ranking lists the top reviewers by point, either lifetime or earned since the period start
func Ranking(db *gorm.DB, period string, at time.Time) ([]RankingEntry, error) {
	since, err := periodStart(period, at)
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, rankingLimit)

	if since.IsZero() {
		err = db.Model(&models.User{}).
			Select("id AS user_id, username, nickname, point, answer_count").
			Where("role = ?", models.RoleReviewer).
			Order("point DESC, id ASC").
			Limit(rankingLimit).
			Scan(&entries).Error
	} else {
		err = db.Table("review_answers").
			Select("review_answers.reviewer_id AS user_id, users.username, users.nickname, "+
				"SUM(review_answers.point) AS point, COUNT(*) AS answer_count").
			Joins("JOIN users ON users.id = review_answers.reviewer_id").
			Where("review_answers.deleted_at IS NULL AND review_answers.created_at >= ?", since).
			Group("review_answers.reviewer_id, users.username, users.nickname").
			Order("point DESC, user_id ASC").
			Limit(rankingLimit).
			Scan(&entries).Error
	}
	if err != nil {
		return nil, utils.Internal("Failed to load ranking!", err)
	}
	return entries, nil
}

type reviewerTotals struct {
	ReviewerID  uint
	AnswerCount int
	Point       float64
}

// ReconcileReviewerStats recomputes answer counts and points from the answers table
// and returns how many reviewers were corrected
func ReconcileReviewerStats(db *gorm.DB) (int, error) {
	var totals []reviewerTotals
	if err := db.Model(&models.ReviewAnswer{}).
		Select("reviewer_id, COUNT(*) AS answer_count, COALESCE(SUM(point), 0) AS point").
		Group("reviewer_id").
		Scan(&totals).Error; err != nil {
		return 0, utils.Internal("Failed to aggregate answers!", err)
	}
	byReviewer := make(map[uint]reviewerTotals, len(totals))
	for _, t := range totals {
		byReviewer[t.ReviewerID] = t
	}

	var reviewers []models.User
	if err := db.Select("id", "answer_count", "point").
		Where("role = ?", models.RoleReviewer).
		Find(&reviewers).Error; err != nil {
		return 0, utils.Internal("Failed to load reviewers!", err)
	}

	corrected := 0
	for _, r := range reviewers {
		want := byReviewer[r.ID]
		if r.AnswerCount == want.AnswerCount && math.Abs(r.Point-want.Point) < 1e-9 {
			continue
		}
		if err := db.Model(&models.User{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
			"answer_count": want.AnswerCount,
			"point":        want.Point,
		}).Error; err != nil {
			return corrected, utils.Internal("Failed to correct reviewer stats!", err)
		}
		utils.Log.WithUserID(r.ID).
			WithField("answer_count", want.AnswerCount).
			WithField("point", want.Point).
			Warn("reviewer stats drifted, corrected")
		utils.ReconcileCorrectionCounter.Inc()
		corrected++
	}
	return corrected, nil
}
