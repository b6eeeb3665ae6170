package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a registered dashboard account. Each account owns a
// personal sync scope derived deterministically from its email; joining a
// shared team key replaces that scope on the client side only.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	DisplayName  string    `json:"display_name" gorm:"size:200"`
	ScopeKey     string    `json:"scope_key" gorm:"not null;size:64;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
