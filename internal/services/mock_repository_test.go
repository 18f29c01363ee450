package services

import (
	"context"
	"time"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
)

// mockRepository is a hand-rolled test double. Sub-repositories are plugged
// in per test; WithTransaction just runs the callback against the same mock.
type mockRepository struct {
	user     repositories.UserRepository
	profile  repositories.ProfileRepository
	quiz     repositories.QuizRepository
	badge    repositories.BadgeRepository
	voice    repositories.VoiceRecordRepository
	resume   repositories.ResumeRepository
	chat     repositories.ChatRepository
	identity repositories.IdentityRepository
}

func (m *mockRepository) User() repositories.UserRepository               { return m.user }
func (m *mockRepository) Profile() repositories.ProfileRepository         { return m.profile }
func (m *mockRepository) Quiz() repositories.QuizRepository               { return m.quiz }
func (m *mockRepository) Achievement() repositories.AchievementRepository { return nil }
func (m *mockRepository) Badge() repositories.BadgeRepository             { return m.badge }
func (m *mockRepository) VoiceRecord() repositories.VoiceRecordRepository { return m.voice }
func (m *mockRepository) Resume() repositories.ResumeRepository           { return m.resume }
func (m *mockRepository) Chat() repositories.ChatRepository               { return m.chat }
func (m *mockRepository) Identity() repositories.IdentityRepository       { return m.identity }
func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// stubUserRepository implements UserRepository via function fields
type stubUserRepository struct {
	createFn      func(ctx context.Context, user *models.User) error
	getByIDFn     func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn  func(ctx context.Context, email string) (*models.User, error)
	getByAuthIDFn func(ctx context.Context, authID string) (*models.User, error)
	updateFn      func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepository) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	return s.getByAuthIDFn(ctx, authID)
}

func (s *stubUserRepository) GetByIDWithRelations(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepository) ListMentors(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepository) Delete(ctx context.Context, id uint) error { return nil }

// stubProfileRepository implements ProfileRepository via function fields
type stubProfileRepository struct {
	createFn      func(ctx context.Context, profile *models.Profile) error
	getByUserIDFn func(ctx context.Context, userID uint) (*models.Profile, error)
	updateFn      func(ctx context.Context, profile *models.Profile) error
}

func (s *stubProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}

func (s *stubProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}

func (s *stubProfileRepository) Delete(ctx context.Context, id uint) error { return nil }

// stubBadgeRepository implements BadgeRepository via function fields
type stubBadgeRepository struct {
	createFn func(ctx context.Context, badge *models.Badge) error
	existsFn func(ctx context.Context, userID uint, name string) (bool, error)
}

func (s *stubBadgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	return s.createFn(ctx, badge)
}

func (s *stubBadgeRepository) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubBadgeRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error) {
	return nil, nil
}

func (s *stubBadgeRepository) ExistsByUserAndName(ctx context.Context, userID uint, name string) (bool, error) {
	return s.existsFn(ctx, userID, name)
}

func (s *stubBadgeRepository) Delete(ctx context.Context, id uint) error { return nil }

// stubResumeRepository implements ResumeRepository via function fields
type stubResumeRepository struct {
	upsertFn  func(ctx context.Context, resume *models.Resume) error
	getByIDFn func(ctx context.Context, id uint) (*models.Resume, error)
}

func (s *stubResumeRepository) Upsert(ctx context.Context, resume *models.Resume) error {
	return s.upsertFn(ctx, resume)
}

func (s *stubResumeRepository) GetByID(ctx context.Context, id uint) (*models.Resume, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubResumeRepository) GetByUserID(ctx context.Context, userID uint) (*models.Resume, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubResumeRepository) Update(ctx context.Context, resume *models.Resume) error { return nil }
func (s *stubResumeRepository) Delete(ctx context.Context, id uint) error               { return nil }

// stubChatRepository implements ChatRepository via function fields
type stubChatRepository struct {
	createSessionFn func(ctx context.Context, session *models.ChatSession) error
	getSessionFn    func(ctx context.Context, id uint) (*models.ChatSession, error)
	touchSessionFn  func(ctx context.Context, id uint, at time.Time) error
	createMessageFn func(ctx context.Context, message *models.ChatMessage) error
}

func (s *stubChatRepository) CreateSession(ctx context.Context, session *models.ChatSession) error {
	return s.createSessionFn(ctx, session)
}

func (s *stubChatRepository) GetSession(ctx context.Context, id uint) (*models.ChatSession, error) {
	return s.getSessionFn(ctx, id)
}

func (s *stubChatRepository) ListSessionsByUser(ctx context.Context, userID uint) ([]*models.ChatSession, error) {
	return nil, nil
}

func (s *stubChatRepository) TouchSession(ctx context.Context, id uint, at time.Time) error {
	return s.touchSessionFn(ctx, id, at)
}

func (s *stubChatRepository) DeleteSession(ctx context.Context, id uint) error { return nil }

func (s *stubChatRepository) CreateMessage(ctx context.Context, message *models.ChatMessage) error {
	return s.createMessageFn(ctx, message)
}

func (s *stubChatRepository) ListMessages(ctx context.Context, sessionID uint, filters repositories.MessageFilters) ([]*models.ChatMessage, error) {
	return nil, nil
}

// stubIdentityRepository implements IdentityRepository via function fields
type stubIdentityRepository struct {
	getByAuthIDFn func(ctx context.Context, authID string) (*models.Identity, error)
	validateFn    func(ctx context.Context, authID string) (bool, error)
}

func (s *stubIdentityRepository) GetByAuthID(ctx context.Context, authID string) (*models.Identity, error) {
	return s.getByAuthIDFn(ctx, authID)
}

func (s *stubIdentityRepository) Validate(ctx context.Context, authID string) (bool, error) {
	return s.validateFn(ctx, authID)
}

// stubVoiceRecordRepository implements VoiceRecordRepository via function fields
type stubVoiceRecordRepository struct {
	createFn func(ctx context.Context, record *models.VoiceRecord) error
}

func (s *stubVoiceRecordRepository) Create(ctx context.Context, record *models.VoiceRecord) error {
	return s.createFn(ctx, record)
}

func (s *stubVoiceRecordRepository) GetByID(ctx context.Context, id uint) (*models.VoiceRecord, error) {
	return nil, repositories.ErrNotFound
}

func (s *stubVoiceRecordRepository) ListByUser(ctx context.Context, userID uint) ([]*models.VoiceRecord, error) {
	return nil, nil
}

func (s *stubVoiceRecordRepository) Delete(ctx context.Context, id uint) error { return nil }
