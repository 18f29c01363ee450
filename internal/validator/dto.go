package validator

import "time"

// UserCreateRequest creates an account, optionally seeding its profile.
// Posting an email that already exists updates that user instead of
// creating a second account.
type UserCreateRequest struct {
	Name      string              `json:"name" validate:"required,min=1,max=200"`
	Email     string              `json:"email" validate:"required,email"`
	AuthID    *string             `json:"auth_id" validate:"omitempty,max=128"`
	AvatarURL *string             `json:"avatar_url" validate:"omitempty,url"`
	Profile   *ProfileSaveRequest `json:"profile"`
}

// UserUpdateRequest updates account fields; nil fields are left untouched
type UserUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// ProfileSaveRequest carries the editable profile fields, used both for
// standalone profile updates and for the profile embedded in user creation
type ProfileSaveRequest struct {
	Bio       *string  `json:"bio" validate:"omitempty,max=2000"`
	Contact   *string  `json:"contact" validate:"omitempty,max=255"`
	Location  *string  `json:"location" validate:"omitempty,max=255"`
	Expertise *string  `json:"expertise" validate:"omitempty,max=255"`
	Languages []string `json:"languages" validate:"omitempty,max=20,dive,language_code"`
	Interests []string `json:"interests" validate:"omitempty,max=20,dive,max=100"`
}

// QuizCreateRequest records a finished quiz for a user
type QuizCreateRequest struct {
	UserID   uint                   `json:"user_id" validate:"required"`
	Title    string                 `json:"title" validate:"required,min=1,max=255"`
	Language string                 `json:"language" validate:"required,language_code"`
	Score    int                    `json:"score" validate:"gte=0,lte=100"`
	Result   map[string]interface{} `json:"result"`
}

// QuizUpdateRequest updates quiz fields; nil fields are left untouched
type QuizUpdateRequest struct {
	Title    *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Language *string                `json:"language" validate:"omitempty,language_code"`
	Score    *int                   `json:"score" validate:"omitempty,gte=0,lte=100"`
	Result   map[string]interface{} `json:"result"`
}

// AchievementCreateRequest records an achievement for a user
type AchievementCreateRequest struct {
	UserID      uint       `json:"user_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	Icon        string     `json:"icon" validate:"omitempty,max=255"`
	EarnedAt    *time.Time `json:"earned_at"`
}

// AchievementUpdateRequest updates achievement fields
type AchievementUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Icon        *string    `json:"icon" validate:"omitempty,max=255"`
	EarnedAt    *time.Time `json:"earned_at"`
}

// BadgeCreateRequest awards a badge. A user can hold each badge name once.
type BadgeCreateRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Icon        string `json:"icon" validate:"omitempty,max=255"`
}

// VoiceRecordCreateRequest registers an already uploaded recording
type VoiceRecordCreateRequest struct {
	UserID          uint   `json:"user_id" validate:"required"`
	URL             string `json:"url" validate:"required,url"`
	DurationSeconds int    `json:"duration_seconds" validate:"gte=0"`
	Language        string `json:"language" validate:"omitempty,language_code"`
	Transcript      string `json:"transcript" validate:"omitempty,max=10000"`
}

// ResumeSaveRequest creates or replaces the caller's resume content
type ResumeSaveRequest struct {
	UserID         uint     `json:"user_id" validate:"required"`
	FullName       string   `json:"full_name" validate:"required,min=1,max=200"`
	Headline       string   `json:"headline" validate:"omitempty,max=255"`
	Summary        string   `json:"summary" validate:"omitempty,max=5000"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone" validate:"omitempty,max=64"`
	Education      string   `json:"education" validate:"omitempty,max=5000"`
	Skills         []string `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Achievements   []string `json:"achievements" validate:"omitempty,max=50,dive,max=255"`
	Projects       []string `json:"projects" validate:"omitempty,max=50,dive,max=255"`
	Certifications []string `json:"certifications" validate:"omitempty,max=50,dive,max=255"`
}

// ChatParticipantRequest describes one participant joining a session
type ChatParticipantRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	Role     string `json:"role" validate:"omitempty,max=32"`
	Language string `json:"language" validate:"omitempty,language_code"`
}

// ChatSessionCreateRequest opens a conversation with its initial participants
type ChatSessionCreateRequest struct {
	Name         string                   `json:"name" validate:"omitempty,max=255"`
	Participants []ChatParticipantRequest `json:"participants" validate:"required,min=1,dive"`
}

// ChatMessageCreateRequest appends a message to a session
type ChatMessageCreateRequest struct {
	SessionID          uint   `json:"session_id" validate:"required"`
	SenderID           uint   `json:"sender_id" validate:"required"`
	Text               string `json:"text" validate:"required,min=1,max=10000"`
	Language           string `json:"language" validate:"omitempty,language_code"`
	TranslatedText     string `json:"translated_text" validate:"required,max=10000"`
	TranslatedLanguage string `json:"translated_language" validate:"omitempty,language_code"`
	IsVoice            bool   `json:"is_voice"`
}

// TranslateRequest asks the translation provider for a single translation
type TranslateRequest struct {
	Text           string `json:"text" validate:"required,min=1,max=10000"`
	SourceLanguage string `json:"source_language" validate:"omitempty,language_code"`
	TargetLanguage string `json:"target_language" validate:"required,language_code"`
}
