package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole is the derived classification of a user. It is not a stored column:
// a user with a profile whose expertise is set counts as a mentor, everyone
// else as a student.
type UserRole string

const (
	RoleMentor  UserRole = "mentor"
	RoleStudent UserRole = "student"
)

type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;size:100"`
	// The unique index is partial so a soft-deleted account does not block
	// re-registration of its email.
	Email string `json:"email" gorm:"uniqueIndex:idx_users_email,where:deleted_at IS NULL;not null;size:255"`

	// AuthID is the identity-provider subject for users provisioned through
	// sign-in; empty for users created directly through the API.
	AuthID string `json:"auth_id,omitempty" gorm:"index;size:255"`

	AvatarURL *string `json:"avatar_url" gorm:"size:500"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Profile      *Profile      `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Quizzes      []Quiz        `json:"quizzes,omitempty" gorm:"foreignKey:UserID"`
	Achievements []Achievement `json:"achievements,omitempty" gorm:"foreignKey:UserID"`
	Badges       []Badge       `json:"badges,omitempty" gorm:"foreignKey:UserID"`
	VoiceRecords []VoiceRecord `json:"voice_records,omitempty" gorm:"foreignKey:UserID"`

	// Computed (not stored)
	Role UserRole `json:"role,omitempty" gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

// ClassifyRole derives the mentor/student classification from the attached
// profile. Expertise present means mentor; absent means student.
func (u *User) ClassifyRole() UserRole {
	if u.Profile != nil && u.Profile.Expertise != nil && *u.Profile.Expertise != "" {
		return RoleMentor
	}
	return RoleStudent
}
