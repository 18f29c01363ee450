package postgres

import (
	"context"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/cache"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProfilePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewProfilePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ProfileRepository {
	return &ProfilePostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (p *ProfilePostgreSQL) Create(ctx context.Context, profile *models.Profile) error {
	if err := p.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", translateError(err))
	}
	cache.InvalidateUserCache(ctx, p.cacheManager, profile.UserID)

	return nil
}

func (p *ProfilePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var profile models.Profile

	err := p.cacheManager.Profile.CacheOrExecute(ctx, cacheKey, &profile, cache.ProfileCacheConfig.TTL, func() (interface{}, error) {
		var dbProfile models.Profile
		if err := p.db.WithContext(ctx).First(&dbProfile, id).Error; err != nil {
			return nil, translateError(err)
		}
		return &dbProfile, nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (p *ProfilePostgreSQL) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)
	var profile models.Profile

	err := p.cacheManager.Profile.CacheOrExecute(ctx, cacheKey, &profile, cache.ProfileCacheConfig.TTL, func() (interface{}, error) {
		var dbProfile models.Profile
		err := p.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbProfile).Error
		if err != nil {
			return nil, translateError(err)
		}
		return &dbProfile, nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (p *ProfilePostgreSQL) Update(ctx context.Context, profile *models.Profile) error {
	// Select forces list and nullable columns to be written even when empty
	err := p.db.WithContext(ctx).Model(profile).
		Select("bio", "contact", "location", "expertise", "languages", "interests", "updated_at").
		Updates(profile).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", translateError(err))
	}

	cache.SafeDelete(ctx, p.cacheManager.Profile, fmt.Sprintf("id:%d", profile.ID))
	cache.InvalidateUserCache(ctx, p.cacheManager, profile.UserID)
	return nil
}

func (p *ProfilePostgreSQL) Delete(ctx context.Context, id uint) error {
	var profile models.Profile
	if err := p.db.WithContext(ctx).Select("id, user_id").First(&profile, id).Error; err != nil {
		return translateError(err)
	}

	if err := p.db.WithContext(ctx).Delete(&models.Profile{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	cache.SafeDelete(ctx, p.cacheManager.Profile, fmt.Sprintf("id:%d", id))
	cache.InvalidateUserCache(ctx, p.cacheManager, profile.UserID)
	return nil
}
