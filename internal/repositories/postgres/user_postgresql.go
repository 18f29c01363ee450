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

type UserPostgreSQL struct {
	db           *gorm.DB
	helpers      *SharedHelpers
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &UserPostgreSQL{
		db:           db,
		helpers:      NewSharedHelpers(db),
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// Create inserts a new user and invalidates list caches
func (u *UserPostgreSQL) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateError(err))
	}
	cache.SafeInvalidatePattern(ctx, u.cacheManager.User, "list:*")
	cache.SafeInvalidatePattern(ctx, u.cacheManager.Mentor, "*")

	return nil
}

// GetByID retrieves a user with their profile, classified by role
func (u *UserPostgreSQL) GetByID(ctx context.Context, id uint) (*models.User, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var user models.User

	err := u.cacheManager.User.CacheOrExecute(ctx, cacheKey, &user, cache.UserCacheConfig.TTL, func() (interface{}, error) {
		var dbUser models.User
		err := u.db.WithContext(ctx).
			Preload("Profile").
			First(&dbUser, id).Error
		if err != nil {
			return nil, translateError(err)
		}
		dbUser.Role = dbUser.ClassifyRole()
		return &dbUser, nil
	})
	if err != nil {
		return nil, err
	}

	user.Role = user.ClassifyRole()
	return &user, nil
}

// GetByEmail retrieves a user by email address. Email lookups back the
// create-or-update path, so they bypass the cache to avoid stale upserts.
func (u *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}

	user.Role = user.ClassifyRole()
	return &user, nil
}

// GetByAuthID retrieves the user linked to an identity-provider subject.
// Like GetByEmail it backs a create-or-update path and bypasses the cache.
func (u *UserPostgreSQL) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).
		Preload("Profile").
		Where("auth_id = ?", authID).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}

	user.Role = user.ClassifyRole()
	return &user, nil
}

// GetByIDWithRelations retrieves a user with all owned collections preloaded
func (u *UserPostgreSQL) GetByIDWithRelations(ctx context.Context, id uint) (*models.User, error) {
	cacheKey := fmt.Sprintf("relations:%d", id)
	var user models.User

	err := u.cacheManager.User.CacheOrExecute(ctx, cacheKey, &user, cache.UserCacheConfig.TTL, func() (interface{}, error) {
		var dbUser models.User
		err := u.db.WithContext(ctx).
			Preload("Profile").
			Preload("Quizzes").
			Preload("Achievements").
			Preload("Badges").
			Preload("VoiceRecords").
			First(&dbUser, id).Error
		if err != nil {
			return nil, translateError(err)
		}
		dbUser.Role = dbUser.ClassifyRole()
		return &dbUser, nil
	})
	if err != nil {
		return nil, err
	}

	user.Role = user.ClassifyRole()
	return &user, nil
}

// List retrieves users with filters and pagination
func (u *UserPostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	query := u.db.WithContext(ctx).Model(&models.User{})

	if filters.Email != nil {
		query = query.Where("email = ?", *filters.Email)
	}
	if filters.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.Role != nil {
		query = u.applyRoleFilter(query, *filters.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = u.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)

	var users []*models.User
	if err := query.Preload("Profile").Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	for _, user := range users {
		user.Role = user.ClassifyRole()
	}

	return users, total, nil
}

// ListMentors retrieves users whose profile declares an expertise
func (u *UserPostgreSQL) ListMentors(ctx context.Context) ([]*models.User, error) {
	cacheKey := "list"
	var mentors []*models.User

	err := u.cacheManager.Mentor.CacheOrExecute(ctx, cacheKey, &mentors, cache.MentorCacheConfig.TTL, func() (interface{}, error) {
		var dbMentors []*models.User
		err := u.db.WithContext(ctx).
			Joins("JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL").
			Where("profiles.expertise IS NOT NULL AND profiles.expertise <> ''").
			Preload("Profile").
			Find(&dbMentors).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list mentors: %w", err)
		}
		return dbMentors, nil
	})
	if err != nil {
		return nil, err
	}

	for _, mentor := range mentors {
		mentor.Role = models.RoleMentor
	}

	return mentors, nil
}

// Update saves user fields and invalidates caches
func (u *UserPostgreSQL) Update(ctx context.Context, user *models.User) error {
	err := u.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":       user.Name,
		"email":      user.Email,
		"auth_id":    user.AuthID,
		"avatar_url": user.AvatarURL,
		"updated_at": user.UpdatedAt,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translateError(err))
	}

	cache.InvalidateUserCache(ctx, u.cacheManager, user.ID)
	return nil
}

// Delete soft deletes a user
func (u *UserPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := u.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.InvalidateUserCache(ctx, u.cacheManager, id)
	return nil
}

func (u *UserPostgreSQL) applyRoleFilter(query *gorm.DB, role models.UserRole) *gorm.DB {
	joined := query.Joins("LEFT JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL")
	if role == models.RoleMentor {
		return joined.Where("profiles.expertise IS NOT NULL AND profiles.expertise <> ''")
	}
	return joined.Where("profiles.expertise IS NULL OR profiles.expertise = ''")
}
