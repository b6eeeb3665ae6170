package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ScopeRecordRepositoryInterface defines the interface for scope record repository
type ScopeRecordRepositoryInterface interface {
	GetByKey(key string) (*models.ScopeRecord, error)
	Upsert(record *models.ScopeRecord) error
	Delete(key string) error
	Exists(key string) (bool, error)
	ListKeys(limit, offset int) ([]string, int64, error)
}

// AccountRepositoryInterface defines the interface for account repository
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	UpdateScopeKey(id uuid.UUID, scopeKey string) error
	CheckEmailExists(email string) (bool, error)
}

// Ensure concrete repositories satisfy their interfaces
var (
	_ ScopeRecordRepositoryInterface = (*ScopeRecordRepository)(nil)
	_ AccountRepositoryInterface     = (*AccountRepository)(nil)
)
