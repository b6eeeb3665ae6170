package repository

import (
	"teamflow-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScopeRecordRepository handles database operations for scope records
type ScopeRecordRepository struct {
	db *gorm.DB
}

// NewScopeRecordRepository creates a new scope record repository
func NewScopeRecordRepository(db *gorm.DB) *ScopeRecordRepository {
	return &ScopeRecordRepository{db: db}
}

// GetByKey retrieves a scope record by its key
func (r *ScopeRecordRepository) GetByKey(key string) (*models.ScopeRecord, error) {
	var record models.ScopeRecord
	err := r.db.First(&record, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts a scope record or overwrites the existing row for the same key
func (r *ScopeRecordRepository) Upsert(record *models.ScopeRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "data", "last_updated", "updated_at"}),
	}).Create(record).Error
}

// Delete deletes a scope record by key
func (r *ScopeRecordRepository) Delete(key string) error {
	return r.db.Delete(&models.ScopeRecord{}, "key = ?", key).Error
}

// Exists checks if a scope record exists for the key
func (r *ScopeRecordRepository) Exists(key string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ScopeRecord{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}

// ListKeys retrieves all record keys with pagination, newest first
func (r *ScopeRecordRepository) ListKeys(limit, offset int) ([]string, int64, error) {
	var keys []string
	var total int64

	if err := r.db.Model(&models.ScopeRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.ScopeRecord{}).
		Order("last_updated DESC").
		Limit(limit).Offset(offset).
		Pluck("key", &keys).Error
	if err != nil {
		return nil, 0, err
	}

	return keys, total, nil
}
