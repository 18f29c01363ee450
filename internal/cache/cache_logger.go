package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateUserCache invalidates user caches plus the mentor listing,
// since a profile edit can flip a user between mentor and student.
func InvalidateUserCache(ctx context.Context, cm *CacheManager, userID uint) {
	SafeDelete(ctx, cm.User,
		fmt.Sprintf("id:%d", userID),
		fmt.Sprintf("relations:%d", userID))
	SafeInvalidatePattern(ctx, cm.User, "email:*")
	SafeInvalidatePattern(ctx, cm.User, "list:*")
	SafeDelete(ctx, cm.Profile, fmt.Sprintf("user:%d", userID))
	SafeInvalidatePattern(ctx, cm.Mentor, "*")
}

// InvalidateResumeCache invalidates both lookup paths for a resume.
func InvalidateResumeCache(ctx context.Context, cm *CacheManager, resumeID, userID uint) {
	SafeDelete(ctx, cm.Resume,
		fmt.Sprintf("id:%d", resumeID),
		fmt.Sprintf("user:%d", userID))
}

// InvalidateSessionCache invalidates a session and every participant's listing.
func InvalidateSessionCache(ctx context.Context, cm *CacheManager, sessionID uint, participantIDs []uint) {
	SafeDelete(ctx, cm.Session, fmt.Sprintf("id:%d", sessionID))
	for _, userID := range participantIDs {
		SafeDelete(ctx, cm.Session, fmt.Sprintf("user:%d", userID))
	}
}
