package userService

import (
	"errors"
	"strings"

	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"gorm.io/gorm"
)

// ReviewerProfile is the public view of a reviewer
type ReviewerProfile struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Nickname    string   `json:"nickname"`
	Languages   []string `json:"languages"`
	AnswerCount int      `json:"answerCount"`
	Point       float64  `json:"point"`
}

func profileOf(u models.User) ReviewerProfile {
	return ReviewerProfile{
		ID:          u.ID,
		Username:    u.Username,
		Nickname:    u.Nickname,
		Languages:   u.LanguageNames(),
		AnswerCount: u.AnswerCount,
		Point:       u.Point,
	}
}

// SearchReviewersByLanguage lists reviewers speaking the language, matched case-insensitively
func SearchReviewersByLanguage(db *gorm.DB, language string) ([]ReviewerProfile, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, utils.NewInvalidParameter("Language is required!")
	}

	speakers := db.Model(&models.Language{}).
		Select("user_id").
		Where("UPPER(name) = ?", strings.ToUpper(language))

	var users []models.User
	if err := db.Where("role = ?", models.RoleReviewer).
		Where("id IN (?)", speakers).
		Preload("Languages", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, utils.Internal("Failed to search reviewers!", err)
	}

	profiles := make([]ReviewerProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, profileOf(u))
	}
	return profiles, nil
}

// UpdateLanguages replaces the language set of a reviewer
func UpdateLanguages(db *gorm.DB, userID uint, languages []string) (*ReviewerProfile, error) {
	names := dedupe(languages)
	if len(names) == 0 {
		return nil, utils.NewInvalidParameter("At least one language is required!")
	}

	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("User not found!")
			}
			return utils.Internal("Failed to load user!", err)
		}
		if !user.IsReviewer() {
			return utils.NewForbidden("Only reviewers can register languages!")
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Language{}).Error; err != nil {
			return utils.Internal("Failed to clear languages!", err)
		}

		user.Languages = make([]models.Language, 0, len(names))
		for _, name := range names {
			user.Languages = append(user.Languages, models.Language{UserID: userID, Name: name})
		}
		if err := tx.Create(&user.Languages).Error; err != nil {
			return utils.Internal("Failed to save languages!", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	profile := profileOf(user)
	return &profile, nil
}

func dedupe(languages []string) []string {
	seen := make(map[string]bool, len(languages))
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		name := strings.TrimSpace(l)
		key := strings.ToUpper(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}
