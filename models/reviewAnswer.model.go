package models

import "gorm.io/gorm"

type ReviewAnswer struct {
	gorm.Model
	ReviewRequestID uint          `gorm:"not null;uniqueIndex" json:"reviewRequestId"`
	ReviewRequest   ReviewRequest `gorm:"foreignKey:ReviewRequestID;constraint:OnDelete:CASCADE" json:"-"`
	ReviewerID      uint          `gorm:"not null;index" json:"reviewerId"`
	Reviewer        User          `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Content         string        `gorm:"type:text;not null" json:"content"`
	Point           float64       `gorm:"not null;default:0" json:"point"`
}
