package models

import (
	"encoding/json"
	"time"
)

// ScopeRecord is the one remote record per sync scope: the serialized
// snapshot a team or account pushes, keyed by its sync key. The store keeps
// the last writer's payload; conflict detection happens at the writer, not
// here.
type ScopeRecord struct {
	Key         string          `json:"key" gorm:"primaryKey;size:64" validate:"required,max=64"`
	Name        string          `json:"name" gorm:"size:255"`
	Data        json.RawMessage `json:"data" gorm:"type:jsonb;not null" validate:"required"`
	LastUpdated int64           `json:"lastUpdated" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name for ScopeRecord
func (ScopeRecord) TableName() string {
	return "scope_records"
}
