package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/cache"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ResumePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewResumePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ResumeRepository {
	return &ResumePostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// Upsert creates the user's resume, or updates the existing row in place when
// one is already stored. The row ID stays stable across repeated saves.
func (r *ResumePostgreSQL) Upsert(ctx context.Context, resume *models.Resume) error {
	var existing models.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", resume.UserID).
		First(&existing).Error

	switch {
	case err == nil:
		resume.ID = existing.ID
		resume.CreatedAt = existing.CreatedAt
		if err := r.save(ctx, resume); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(resume).Error; err != nil {
			return fmt.Errorf("failed to create resume: %w", translateError(err))
		}
	default:
		return fmt.Errorf("failed to look up resume: %w", err)
	}

	cache.InvalidateResumeCache(ctx, r.cacheManager, resume.ID, resume.UserID)
	return nil
}

func (r *ResumePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Resume, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var resume models.Resume

	err := r.cacheManager.Resume.CacheOrExecute(ctx, cacheKey, &resume, cache.ResumeCacheConfig.TTL, func() (interface{}, error) {
		var dbResume models.Resume
		if err := r.db.WithContext(ctx).First(&dbResume, id).Error; err != nil {
			return nil, translateError(err)
		}
		return &dbResume, nil
	})
	if err != nil {
		return nil, err
	}

	return &resume, nil
}

func (r *ResumePostgreSQL) GetByUserID(ctx context.Context, userID uint) (*models.Resume, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)
	var resume models.Resume

	err := r.cacheManager.Resume.CacheOrExecute(ctx, cacheKey, &resume, cache.ResumeCacheConfig.TTL, func() (interface{}, error) {
		var dbResume models.Resume
		err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbResume).Error
		if err != nil {
			return nil, translateError(err)
		}
		return &dbResume, nil
	})
	if err != nil {
		return nil, err
	}

	return &resume, nil
}

func (r *ResumePostgreSQL) Update(ctx context.Context, resume *models.Resume) error {
	if err := r.save(ctx, resume); err != nil {
		return err
	}

	cache.InvalidateResumeCache(ctx, r.cacheManager, resume.ID, resume.UserID)
	return nil
}

func (r *ResumePostgreSQL) Delete(ctx context.Context, id uint) error {
	var resume models.Resume
	if err := r.db.WithContext(ctx).Select("id, user_id").First(&resume, id).Error; err != nil {
		return translateError(err)
	}

	if err := r.db.WithContext(ctx).Delete(&models.Resume{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	cache.InvalidateResumeCache(ctx, r.cacheManager, id, resume.UserID)
	return nil
}

func (r *ResumePostgreSQL) save(ctx context.Context, resume *models.Resume) error {
	// Select forces list columns to be written even when empty
	err := r.db.WithContext(ctx).Model(resume).
		Select("full_name", "headline", "summary", "email", "phone", "education",
			"skills", "achievements", "projects", "certifications", "updated_at").
		Updates(resume).Error
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", translateError(err))
	}
	return nil
}
