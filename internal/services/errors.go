package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services. Handlers map these onto HTTP status
// codes, so new error values need a case in handleServiceError.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrBadgeNotFound       = errors.New("badge not found")
	ErrVoiceRecordNotFound = errors.New("voice record not found")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrSessionNotFound     = errors.New("chat session not found")

	ErrBadgeAlreadyEarned = errors.New("Badge already earned")

	ErrIdentityNotFound = errors.New("identity not found at provider")
	ErrIdentityDisabled = errors.New("identity is not allowed to sign in")

	ErrUploadNotConfigured      = errors.New("file upload storage not configured")
	ErrTranslationNotConfigured = errors.New("translation provider not configured")
)

// UpstreamError wraps a failure from an external provider (translation,
// object storage, identity). Details are safe to return to clients; Err is
// for logs only.
type UpstreamError struct {
	Provider string
	Op       string
	Details  string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Provider, e.Op, e.Details)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError builds an upstream error for provider failures
func NewUpstreamError(provider, op, details string, err error) *UpstreamError {
	return &UpstreamError{
		Provider: provider,
		Op:       op,
		Details:  details,
		Err:      err,
	}
}
