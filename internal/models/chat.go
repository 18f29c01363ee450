package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultSessionName is applied when a session is created without a name.
const DefaultSessionName = "New conversation"

// ChatSession groups participants and their messages. UpdatedAt is advanced
// whenever a message is appended, so listing by UpdatedAt desc surfaces the
// most recently active conversations first.
type ChatSession struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Participants []ChatParticipant `json:"participants,omitempty" gorm:"foreignKey:SessionID"`
	Messages     []ChatMessage     `json:"messages,omitempty" gorm:"foreignKey:SessionID"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatParticipant ties a user to a session with the role and language they
// joined under. A session always has at least one participant.
type ChatParticipant struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SessionID uint   `json:"session_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Role      string `json:"role" gorm:"size:32"`
	Language  string `json:"language" gorm:"size:16"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (ChatParticipant) TableName() string {
	return "chat_participants"
}

// ChatMessage is an append-only message row. Messages within a session are
// read back in CreatedAt order.
type ChatMessage struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	SessionID uint `json:"session_id" gorm:"index;not null"`
	SenderID  uint `json:"sender_id" gorm:"index;not null"`

	Text               string `json:"text" gorm:"type:text;not null"`
	Language           string `json:"language" gorm:"size:16"`
	TranslatedText     string `json:"translated_text,omitempty" gorm:"type:text"`
	TranslatedLanguage string `json:"translated_language,omitempty" gorm:"size:16"`
	IsVoice            bool   `json:"is_voice"`

	CreatedAt time.Time `json:"created_at"`

	Sender *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
