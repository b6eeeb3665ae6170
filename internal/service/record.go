package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/synckey"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RecordService provides scope record business logic. The store is a dumb
// upsert target: whoever writes last wins, and writers run their own
// conflict check before pushing.
type RecordService struct {
	repo      repository.ScopeRecordRepositoryInterface
	validator *validator.Validate
}

// Ensure RecordService implements RecordServiceInterface
var _ RecordServiceInterface = (*RecordService)(nil)

// NewRecordService creates a new RecordService
func NewRecordService(repo repository.ScopeRecordRepositoryInterface, validator *validator.Validate) *RecordService {
	return &RecordService{
		repo:      repo,
		validator: validator,
	}
}

// RecordResponse represents a scope record in API responses
type RecordResponse struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Data        json.RawMessage `json:"data"`
	LastUpdated int64           `json:"lastUpdated"`
}

// PutRecordRequest represents the payload for writing a scope record
type PutRecordRequest struct {
	Name        string          `json:"name" validate:"max=255"`
	Data        json.RawMessage `json:"data" validate:"required"`
	LastUpdated int64           `json:"lastUpdated" validate:"gte=0"`
}

// GetRecord retrieves the record stored under a sync key
func (s *RecordService) GetRecord(key string) (*RecordResponse, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return toRecordResponse(record), nil
}

// PutRecord validates and upserts the record for a sync key
func (s *RecordService) PutRecord(key string, req *PutRecordRequest) (*RecordResponse, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !json.Valid(req.Data) {
		return nil, &apperrors.ValidationError{Field: "data", Message: "must be valid JSON"}
	}

	lastUpdated := req.LastUpdated
	if lastUpdated == 0 {
		lastUpdated = time.Now().UnixMilli()
	}
	name := req.Name
	if name == "" {
		name = "TeamFlow:" + key
	}

	record := &models.ScopeRecord{
		Key:         key,
		Name:        name,
		Data:        req.Data,
		LastUpdated: lastUpdated,
	}
	if err := s.repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to upsert record: %w", err)
	}

	return toRecordResponse(record), nil
}

// DeleteRecord removes the record stored under a sync key
func (s *RecordService) DeleteRecord(key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	exists, err := s.repo.Exists(key)
	if err != nil {
		return fmt.Errorf("failed to check record: %w", err)
	}
	if !exists {
		return apperrors.ErrScopeNotFound
	}

	return s.repo.Delete(key)
}

// normalizeKey uppercases team keys and rejects anything that is neither a
// team key nor a personal account scope.
func normalizeKey(key string) (string, error) {
	normalized := synckey.Normalize(key)
	if synckey.Valid(normalized) {
		return normalized, nil
	}
	if synckey.ValidAccountScope(key) {
		return key, nil
	}
	return "", &apperrors.ValidationError{Field: "key", Message: "must be a TF-XXXXXX-XXXX team key or a personal scope key"}
}

func toRecordResponse(record *models.ScopeRecord) *RecordResponse {
	return &RecordResponse{
		Key:         record.Key,
		Name:        record.Name,
		Data:        record.Data,
		LastUpdated: record.LastUpdated,
	}
}
