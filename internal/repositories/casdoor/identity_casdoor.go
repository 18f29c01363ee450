package casdoor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/redis/go-redis/v9"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
)

// CasdoorConfig holds the configuration for Casdoor connection
type CasdoorConfig struct {
	Endpoint         string
	ClientID         string
	ClientSecret     string
	Certificate      string
	OrganizationName string
	ApplicationName  string
}

// Enabled reports whether the identity provider is configured at all.
// Deployments without Casdoor fall back to header-based identification.
func (c CasdoorConfig) Enabled() bool {
	return c.Endpoint != "" && c.ClientID != ""
}

type IdentityCasdoor struct {
	client *casdoorsdk.Client
	redis  *redis.Client
	config CasdoorConfig

	cachePrefix string
	cacheTTL    time.Duration
}

func NewIdentityCasdoor(config CasdoorConfig, redisClient *redis.Client) repositories.IdentityRepository {
	client := casdoorsdk.NewClient(
		config.Endpoint,
		config.ClientID,
		config.ClientSecret,
		config.Certificate,
		config.OrganizationName,
		config.ApplicationName,
	)

	return &IdentityCasdoor{
		client:      client,
		redis:       redisClient,
		config:      config,
		cachePrefix: "identity:",
		cacheTTL:    15 * time.Minute,
	}
}

func (i *IdentityCasdoor) getCacheKey(key string) string {
	return fmt.Sprintf("%s%s", i.cachePrefix, key)
}

func (i *IdentityCasdoor) getIdentityFromCache(ctx context.Context, key string) (*models.Identity, error) {
	if i.redis == nil {
		return nil, nil // Cache not available
	}

	cacheKey := i.getCacheKey(key)
	data, err := i.redis.Get(ctx, cacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Not found in cache
		}
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached identity: %w", err)
	}

	return &identity, nil
}

func (i *IdentityCasdoor) setIdentityCache(ctx context.Context, key string, identity *models.Identity) error {
	if i.redis == nil {
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity for cache: %w", err)
	}

	cacheKey := i.getCacheKey(key)
	return i.redis.Set(ctx, cacheKey, data, i.cacheTTL).Err()
}

// convertCasdoorUser converts a Casdoor user to the internal identity model
func (i *IdentityCasdoor) convertCasdoorUser(casdoorUser *casdoorsdk.User) *models.Identity {
	if casdoorUser == nil {
		return nil
	}

	return &models.Identity{
		AuthID:      casdoorUser.Id,
		Name:        casdoorUser.Name,
		DisplayName: casdoorUser.DisplayName,
		Email:       casdoorUser.Email,
		AvatarURL:   casdoorUser.Avatar,
		IsForbidden: casdoorUser.IsForbidden,
		IsDeleted:   casdoorUser.IsDeleted,
	}
}

// GetByAuthID retrieves an identity by its provider-side ID
func (i *IdentityCasdoor) GetByAuthID(ctx context.Context, authID string) (*models.Identity, error) {
	cacheKey := fmt.Sprintf("id:%s", authID)
	if cached, err := i.getIdentityFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	casdoorUser, err := i.client.GetUserByUserId(authID)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity from Casdoor: %w", err)
	}

	if casdoorUser == nil {
		return nil, repositories.ErrNotFound
	}

	identity := i.convertCasdoorUser(casdoorUser)
	i.setIdentityCache(ctx, cacheKey, identity)

	return identity, nil
}

// Validate reports whether the identity exists and is allowed to sign in
func (i *IdentityCasdoor) Validate(ctx context.Context, authID string) (bool, error) {
	identity, err := i.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return identity.Active(), nil
}
