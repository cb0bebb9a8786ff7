package models

import (
	"strings"

	"gorm.io/gorm"
)

// UserRole is the closed set of roles a user can hold
type UserRole string

const (
	RoleUser     UserRole = "ROLE_USER"
	RoleReviewer UserRole = "ROLE_REVIEWER"
)

// ParseUserRole accepts both "REVIEWER" and "ROLE_REVIEWER" spellings
func ParseUserRole(value string) (UserRole, bool) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(v, "ROLE_") {
		v = "ROLE_" + v
	}
	switch UserRole(v) {
	case RoleUser:
		return RoleUser, true
	case RoleReviewer:
		return RoleReviewer, true
	}
	return "", false
}

type User struct {
	gorm.Model
	Username    string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	Nickname    string     `gorm:"default:''" json:"nickname"`
	Role        UserRole   `gorm:"type:varchar(20);default:'ROLE_USER'" json:"role"`
	Languages   []Language `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	AnswerCount int        `gorm:"default:0" json:"answerCount"`
	Point       float64    `gorm:"default:0" json:"point"`
}

func (u User) IsReviewer() bool {
	return u.Role == RoleReviewer
}

// LanguageNames flattens the preloaded language rows
func (u User) LanguageNames() []string {
	names := make([]string, 0, len(u.Languages))
	for _, l := range u.Languages {
		names = append(names, l.Name)
	}
	return names
}
