package postgres

import (
	"context"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (q *QuizPostgreSQL) Create(ctx context.Context, quiz *models.Quiz) error {
	if err := q.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", translateError(err))
	}
	return nil
}

func (q *QuizPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := q.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &quiz, nil
}

func (q *QuizPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Quiz, error) {
	var quizzes []*models.Quiz
	err := q.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

func (q *QuizPostgreSQL) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	query := q.db.WithContext(ctx).Model(&models.Quiz{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Language != nil {
		query = query.Where("language = ?", *filters.Language)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	query = q.helpers.ApplyPaginationAndSort(query, "", "", filters.Limit, filters.Offset)

	var quizzes []*models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return quizzes, total, nil
}

func (q *QuizPostgreSQL) Update(ctx context.Context, quiz *models.Quiz) error {
	err := q.db.WithContext(ctx).Model(&models.Quiz{}).Where("id = ?", quiz.ID).Updates(map[string]interface{}{
		"title":      quiz.Title,
		"language":   quiz.Language,
		"score":      quiz.Score,
		"result":     quiz.Result,
		"updated_at": quiz.UpdatedAt,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

func (q *QuizPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := q.db.WithContext(ctx).Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete quiz: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
