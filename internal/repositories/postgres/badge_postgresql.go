package postgres

import (
	"context"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"gorm.io/gorm"
)

type BadgePostgreSQL struct {
	db *gorm.DB
}

func NewBadgePostgreSQL(db *gorm.DB) repositories.BadgeRepository {
	return &BadgePostgreSQL{db: db}
}

// Create inserts a badge. The unique index on (user_id, name) makes repeat
// awards surface as ErrDuplicate rather than a second row.
func (b *BadgePostgreSQL) Create(ctx context.Context, badge *models.Badge) error {
	if err := b.db.WithContext(ctx).Create(badge).Error; err != nil {
		return fmt.Errorf("failed to create badge: %w", translateError(err))
	}
	return nil
}

func (b *BadgePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	var badge models.Badge
	if err := b.db.WithContext(ctx).First(&badge, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &badge, nil
}

func (b *BadgePostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error) {
	var badges []*models.Badge
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

func (b *BadgePostgreSQL) ExistsByUserAndName(ctx context.Context, userID uint, name string) (bool, error) {
	var count int64
	err := b.db.WithContext(ctx).
		Model(&models.Badge{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check badge existence: %w", err)
	}
	return count > 0, nil
}

func (b *BadgePostgreSQL) Delete(ctx context.Context, id uint) error {
	result := b.db.WithContext(ctx).Delete(&models.Badge{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete badge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
