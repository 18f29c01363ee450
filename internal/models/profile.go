package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_profiles_user,where:deleted_at IS NULL;not null"`

	Bio      string `json:"bio" gorm:"type:text"`
	Contact  string `json:"contact" gorm:"size:255"`
	Location string `json:"location" gorm:"size:255"`

	// Expertise set => the owning user is classified as a mentor.
	Expertise *string `json:"expertise" gorm:"size:255"`

	Languages StringList `json:"languages" gorm:"type:text"`
	Interests StringList `json:"interests" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Profile) TableName() string {
	return "profiles"
}
