package models

import (
	"strings"

	"gorm.io/gorm"
)

// ReviewRequestStatus defines the status of a review request
type ReviewRequestStatus string

const (
	StatusUnsolve ReviewRequestStatus = "UNSOLVE"
	StatusSolve   ReviewRequestStatus = "SOLVE"
)

// ParseReviewRequestStatus matches case-insensitively against the known statuses
func ParseReviewRequestStatus(value string) (ReviewRequestStatus, bool) {
	switch ReviewRequestStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusUnsolve:
		return StatusUnsolve, true
	case StatusSolve:
		return StatusSolve, true
	}
	return "", false
}

type ReviewRequest struct {
	gorm.Model
	RequesterID  uint                `gorm:"not null;index" json:"requesterId"`
	Requester    User                `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	ReviewerID   uint                `gorm:"not null;index" json:"reviewerId"`
	Reviewer     User                `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Title        string              `gorm:"size:200;not null" json:"title"`
	Content      string              `gorm:"type:text" json:"content"`
	LanguageName string              `gorm:"size:40;index" json:"languageName"`
	Status       ReviewRequestStatus `gorm:"type:varchar(20);default:'UNSOLVE';index" json:"status"`
}
