package postgres

import (
	"context"
	"fmt"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"gorm.io/gorm"
)

type VoiceRecordPostgreSQL struct {
	db *gorm.DB
}

func NewVoiceRecordPostgreSQL(db *gorm.DB) repositories.VoiceRecordRepository {
	return &VoiceRecordPostgreSQL{db: db}
}

func (v *VoiceRecordPostgreSQL) Create(ctx context.Context, record *models.VoiceRecord) error {
	if err := v.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create voice record: %w", translateError(err))
	}
	return nil
}

func (v *VoiceRecordPostgreSQL) GetByID(ctx context.Context, id uint) (*models.VoiceRecord, error) {
	var record models.VoiceRecord
	if err := v.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (v *VoiceRecordPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.VoiceRecord, error) {
	var records []*models.VoiceRecord
	err := v.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list voice records: %w", err)
	}
	return records, nil
}

func (v *VoiceRecordPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := v.db.WithContext(ctx).Delete(&models.VoiceRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete voice record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
