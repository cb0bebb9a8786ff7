package models

import "gorm.io/gorm"

// Language is a programming language spoken by a reviewer
type Language struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"-"`
	Name   string `gorm:"size:40;not null;index" json:"name"`
}
