package postgres

import (
	"context"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"gorm.io/gorm"
)

type AchievementPostgreSQL struct {
	db *gorm.DB
}

func NewAchievementPostgreSQL(db *gorm.DB) repositories.AchievementRepository {
	return &AchievementPostgreSQL{db: db}
}

func (a *AchievementPostgreSQL) Create(ctx context.Context, achievement *models.Achievement) error {
	if err := a.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return fmt.Errorf("failed to create achievement: %w", translateError(err))
	}
	return nil
}

func (a *AchievementPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := a.db.WithContext(ctx).First(&achievement, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &achievement, nil
}

func (a *AchievementPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&achievements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

func (a *AchievementPostgreSQL) Update(ctx context.Context, achievement *models.Achievement) error {
	err := a.db.WithContext(ctx).Model(&models.Achievement{}).Where("id = ?", achievement.ID).Updates(map[string]interface{}{
		"title":       achievement.Title,
		"description": achievement.Description,
		"icon":        achievement.Icon,
		"earned_at":   achievement.EarnedAt,
		"updated_at":  achievement.UpdatedAt,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}
	return nil
}

func (a *AchievementPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := a.db.WithContext(ctx).Delete(&models.Achievement{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete achievement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
