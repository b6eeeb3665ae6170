package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateScopeKey points an account at a different scope record
func (r *AccountRepository) UpdateScopeKey(id uuid.UUID, scopeKey string) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).Update("scope_key", scopeKey).Error
}

// CheckEmailExists checks if an account exists for the email
func (r *AccountRepository) CheckEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
