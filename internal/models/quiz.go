package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quiz struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Title    string `json:"title" gorm:"not null;size:200"`
	Language string `json:"language" gorm:"size:32"`
	Score    int    `json:"score"`

	// Result holds the arbitrary per-quiz payload (questions, answers,
	// per-question outcomes) as submitted by the client.
	Result datatypes.JSON `json:"result" gorm:"type:jsonb"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
