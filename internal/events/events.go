package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published by this service
const (
	EventUserRegistered = "user.registered"
	EventBadgeAwarded   = "user.badge_awarded"
	EventQuizCompleted  = "quiz.completed"
	EventSessionStarted = "chat.session_started"
	EventMessagePosted  = "chat.message_posted"
	EventVoiceUploaded  = "voice.uploaded"
)

// EventSource identifies this service in published events
const EventSource = "mentorship-service"

// Event is the envelope every published message shares
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent creates an event envelope with identity and timing filled in
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event *Event) error
	Close() error
}

// BadgeAwardedEvent is emitted when a user earns a new badge
type BadgeAwardedEvent struct {
	UserID    uint   `json:"user_id"`
	BadgeID   uint   `json:"badge_id"`
	BadgeName string `json:"badge_name"`
}

// MessagePostedEvent is emitted after a chat message is stored
type MessagePostedEvent struct {
	SessionID uint `json:"session_id"`
	MessageID uint `json:"message_id"`
	SenderID  uint `json:"sender_id"`
	IsVoice   bool `json:"is_voice"`
}

// QuizCompletedEvent is emitted when a quiz result is recorded
type QuizCompletedEvent struct {
	UserID   uint   `json:"user_id"`
	QuizID   uint   `json:"quiz_id"`
	Language string `json:"language"`
	Score    int    `json:"score"`
}

// UserRegisteredEvent is emitted for newly created accounts
type UserRegisteredEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
