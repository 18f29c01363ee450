package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge is unique per (user_id, name): earning the same badge twice is a
// conflict, not a second row. The index is partial so a deleted badge can
// be earned again.
type Badge struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_badges_user_name,where:deleted_at IS NULL"`

	Name        string `json:"name" gorm:"not null;size:200;uniqueIndex:idx_badges_user_name"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:500"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Badge) TableName() string {
	return "badges"
}
