package reviewService

import (
	"testing"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) models.User {
	t.Helper()

	user := models.User{Username: username, Password: "hashed", Nickname: username + "_nick", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createRequest(t *testing.T, db *gorm.DB, requester, reviewer models.User, title string, createdAt time.Time) models.ReviewRequest {
	t.Helper()

	request := models.ReviewRequest{
		RequesterID:  requester.ID,
		ReviewerID:   reviewer.ID,
		Title:        title,
		Content:      "content of " + title,
		LanguageName: "JAVA",
		Status:       models.StatusUnsolve,
	}
	request.CreatedAt = createdAt
	require.NoError(t, db.Create(&request).Error)
	return request
}

// scenario seeds one request by "user" for "reviewer" with a comment from each
// and the reviewer's answer
type scenario struct {
	user     models.User
	reviewer models.User
	request  models.ReviewRequest
	comments []models.ReviewRequestComment
}

func seedScenario(t *testing.T, db *gorm.DB) scenario {
	t.Helper()

	s := scenario{
		user:     createUser(t, db, "user", models.RoleUser),
		reviewer: createUser(t, db, "reviewer", models.RoleReviewer),
	}
	s.request = createRequest(t, db, s.user, s.reviewer, "title", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	for _, author := range []models.User{s.user, s.reviewer} {
		comment, err := AddComment(db, s.request.ID, author.ID, "comment by "+author.Username)
		require.NoError(t, err)
		s.comments = append(s.comments, *comment)
	}

	_, err := AnswerRequest(db, s.request.ID, s.reviewer.ID, "looks good", 4.5)
	require.NoError(t, err)
	return s
}
