package reviewService

import (
	"errors"
	"fmt"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/config"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"gorm.io/gorm"
)

// Scope selects which side of a review request the caller is on
type Scope int

const (
	ScopeAuthored Scope = iota + 1
	ScopeReceived
)

func (s Scope) String() string {
	switch s {
	case ScopeAuthored:
		return "AUTHORED"
	case ScopeReceived:
		return "RECEIVED"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

func (s Scope) column() (string, error) {
	switch s {
	case ScopeAuthored:
		return "review_requests.requester_id", nil
	case ScopeReceived:
		return "review_requests.reviewer_id", nil
	}
	return "", utils.NewInvalidParameter("Unknown listing scope!")
}

const defaultSortKey = "createdAt"

// sortColumns maps public sort keys onto order expressions
var sortColumns = map[string]string{
	"createdAt":    "review_requests.created_at",
	"updatedAt":    "review_requests.updated_at",
	"title":        "review_requests.title",
	"status":       "review_requests.status",
	"languageName": "review_requests.language_name",
	"commentCount": "comment_count",
}

const commentCountColumn = "(SELECT COUNT(*) FROM review_request_comments c " +
	"WHERE c.review_request_id = review_requests.id AND c.deleted_at IS NULL) AS comment_count"

var summaryColumns = []string{
	"review_requests.id AS review_request_id",
	"users.username",
	"users.nickname",
	"review_requests.title",
	"review_requests.content",
	"review_requests.language_name",
	"review_requests.status",
	"review_requests.created_at",
	commentCountColumn,
}

// ListQuery is the raw paging, sorting and filtering input of a listing
type ListQuery struct {
	Page   int
	Size   int
	SortBy string
	IsAsc  bool
	Status string
}

// NormalizedQuery is a ListQuery after defaults and validation
type NormalizedQuery struct {
	Page    int
	Size    int
	SortBy  string
	IsAsc   bool
	Status  models.ReviewRequestStatus
	HasStat bool
}

// Offset of the first row of the page
func (q NormalizedQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// OrderClause always ends with the id so equal sort values keep a fixed order
func (q NormalizedQuery) OrderClause() string {
	direction := "DESC"
	if q.IsAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s, review_requests.id ASC", sortColumns[q.SortBy], direction)
}

// Normalize applies page and size defaults and rejects unknown statuses
func Normalize(q ListQuery) (NormalizedQuery, error) {
	cfg := config.Get()

	n := NormalizedQuery{Page: q.Page, Size: q.Size, SortBy: q.SortBy, IsAsc: q.IsAsc}
	if n.Page < 1 {
		n.Page = 1
	}
	if n.Size < 1 || n.Size > cfg.MaxPageSize {
		n.Size = cfg.DefaultPageSize
	}
	if _, ok := sortColumns[n.SortBy]; !ok {
		n.SortBy = defaultSortKey
	}

	if q.Status != "" {
		status, ok := models.ParseReviewRequestStatus(q.Status)
		if !ok {
			return NormalizedQuery{}, utils.NewInvalidParameter(
				fmt.Sprintf("Invalid status %q! Must be one of: UNSOLVE, SOLVE.", q.Status))
		}
		n.Status = status
		n.HasStat = true
	}
	return n, nil
}

// RequestSummary is one row of a listing
type RequestSummary struct {
	ReviewRequestID uint                       `json:"reviewRequestId"`
	Username        string                     `json:"username"`
	Nickname        string                     `json:"nickname"`
	Title           string                     `json:"title"`
	Content         string                     `json:"content"`
	LanguageName    string                     `json:"languageName"`
	Status          models.ReviewRequestStatus `json:"status"`
	CreatedAt       time.Time                  `json:"createdAt"`
	CommentCount    int64                      `json:"commentCount"`
}

// PageEnvelope wraps one page of summaries with the totals
type PageEnvelope struct {
	TotalPages    int              `json:"totalPages"`
	TotalElements int64            `json:"totalElements"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	Data          []RequestSummary `json:"data"`
}

// ListRequests returns a page of the caller's authored or received review requests.
// Totals, rows and comment counts are read inside one transaction.
func ListRequests(db *gorm.DB, callerID uint, scope Scope, q ListQuery) (*PageEnvelope, error) {
	if callerID == 0 {
		return nil, utils.NewUnauthorized("Unauthorized!")
	}
	column, err := scope.column()
	if err != nil {
		return nil, err
	}
	query, err := Normalize(q)
	if err != nil {
		return nil, err
	}

	envelope := &PageEnvelope{Page: query.Page, Size: query.Size, Data: make([]RequestSummary, 0)}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, callerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewUnauthorized("User not found!")
			}
			return utils.Internal("Failed to resolve caller!", err)
		}

		scoped := func() *gorm.DB {
			chain := tx.Model(&models.ReviewRequest{}).
				Joins("JOIN users ON users.id = review_requests.requester_id").
				Where(column+" = ?", callerID)
			if query.HasStat {
				chain = chain.Where("review_requests.status = ?", query.Status)
			}
			return chain
		}

		if err := scoped().Count(&envelope.TotalElements).Error; err != nil {
			return utils.Internal("Failed to count review requests!", err)
		}
		envelope.TotalPages = int((envelope.TotalElements + int64(query.Size) - 1) / int64(query.Size))
		// past the last page; also keeps Offset from overflowing on huge page numbers
		if int64(query.Page) > int64(envelope.TotalPages) {
			return nil
		}

		if err := scoped().
			Select(summaryColumns).
			Order(query.OrderClause()).
			Offset(query.Offset()).
			Limit(query.Size).
			Scan(&envelope.Data).Error; err != nil {
			return utils.Internal("Failed to fetch review requests!", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return envelope, nil
}
