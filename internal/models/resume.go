package models

import (
	"time"

	"gorm.io/gorm"
)

// Resume is at most one per user; creation for a user that already has one
// updates the existing row in place (upsert keyed by user_id).
type Resume struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_resumes_user,where:deleted_at IS NULL;not null"`

	FullName  string `json:"full_name" gorm:"size:200"`
	Headline  string `json:"headline" gorm:"size:255"`
	Summary   string `json:"summary" gorm:"type:text"`
	Email     string `json:"email" gorm:"size:255"`
	Phone     string `json:"phone" gorm:"size:64"`
	Education string `json:"education" gorm:"type:text"`

	Skills         StringList `json:"skills" gorm:"type:text"`
	Achievements   StringList `json:"achievements" gorm:"type:text"`
	Projects       StringList `json:"projects" gorm:"type:text"`
	Certifications StringList `json:"certifications" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Resume) TableName() string {
	return "resumes"
}
