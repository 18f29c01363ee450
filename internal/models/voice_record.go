package models

import (
	"time"

	"gorm.io/gorm"
)

type VoiceRecord struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	// URL is the public object URL in the storage bucket.
	URL             string `json:"url" gorm:"not null;size:1000"`
	DurationSeconds int    `json:"duration_seconds"`
	Language        string `json:"language" gorm:"size:32"`
	Transcript      string `json:"transcript" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (VoiceRecord) TableName() string {
	return "voice_records"
}
