package models

import (
	"time"

	"gorm.io/gorm"
)

type Achievement struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	Icon        string     `json:"icon" gorm:"size:500"`
	EarnedAt    *time.Time `json:"earned_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Achievement) TableName() string {
	return "achievements"
}
