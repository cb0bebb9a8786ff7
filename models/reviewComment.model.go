package models

import "gorm.io/gorm"

// ReviewRequestComment is a comment left on a review request
type ReviewRequestComment struct {
	gorm.Model
	ReviewRequestID uint          `gorm:"not null;index" json:"reviewRequestId"`
	ReviewRequest   ReviewRequest `gorm:"foreignKey:ReviewRequestID;constraint:OnDelete:CASCADE" json:"-"`
	UserID          uint          `gorm:"not null;index" json:"userId"`
	User            User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content         string        `gorm:"type:text;not null" json:"content"`
}
