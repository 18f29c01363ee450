package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/TalkBridge-2025/mentorship-service/internal/cache"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ChatPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewChatPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ChatRepository {
	return &ChatPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// CreateSession inserts a session together with its participants
func (c *ChatPostgreSQL) CreateSession(ctx context.Context, session *models.ChatSession) error {
	if err := c.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create chat session: %w", translateError(err))
	}

	cache.InvalidateSessionCache(ctx, c.cacheManager, session.ID, participantIDs(session))
	return nil
}

// GetSession retrieves a session with participants and messages in send order
func (c *ChatPostgreSQL) GetSession(ctx context.Context, id uint) (*models.ChatSession, error) {
	var session models.ChatSession
	err := c.db.WithContext(ctx).
		Preload("Participants").
		Preload("Participants.User").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.created_at ASC")
		}).
		First(&session, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

// ListSessionsByUser lists a user's sessions, most recently active first
func (c *ChatPostgreSQL) ListSessionsByUser(ctx context.Context, userID uint) ([]*models.ChatSession, error) {
	var sessions []*models.ChatSession
	err := c.db.WithContext(ctx).
		Joins("JOIN chat_participants ON chat_participants.session_id = chat_sessions.id").
		Where("chat_participants.user_id = ?", userID).
		Order("chat_sessions.updated_at DESC").
		Preload("Participants").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

// TouchSession advances a session's updated_at so it sorts as recently active
func (c *ChatPostgreSQL) TouchSession(ctx context.Context, id uint, at time.Time) error {
	result := c.db.WithContext(ctx).
		Model(&models.ChatSession{}).
		Where("id = ?", id).
		Update("updated_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to touch chat session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.SafeDelete(ctx, c.cacheManager.Session, fmt.Sprintf("id:%d", id))
	return nil
}

func (c *ChatPostgreSQL) DeleteSession(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&models.ChatSession{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete chat session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.SafeDelete(ctx, c.cacheManager.Session, fmt.Sprintf("id:%d", id))
	return nil
}

func (c *ChatPostgreSQL) CreateMessage(ctx context.Context, message *models.ChatMessage) error {
	if err := c.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create chat message: %w", translateError(err))
	}
	return nil
}

func (c *ChatPostgreSQL) ListMessages(ctx context.Context, sessionID uint, filters repositories.MessageFilters) ([]*models.ChatMessage, error) {
	query := c.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC")

	if filters.SenderID != nil {
		query = query.Where("sender_id = ?", *filters.SenderID)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var messages []*models.ChatMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func participantIDs(session *models.ChatSession) []uint {
	ids := make([]uint, 0, len(session.Participants))
	for _, p := range session.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}
