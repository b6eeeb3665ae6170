package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"teamflow-backend/internal/database/models"
	"teamflow-backend/internal/snapshot"
	"teamflow-backend/internal/synckey"

	"github.com/google/uuid"
)

// ScopeRecordFactory provides methods to create test ScopeRecord data
type ScopeRecordFactory struct{}

// NewScopeRecordFactory creates a new ScopeRecordFactory
func NewScopeRecordFactory() *ScopeRecordFactory {
	return &ScopeRecordFactory{}
}

// Create creates a test ScopeRecord with default values
func (f *ScopeRecordFactory) Create() *models.ScopeRecord {
	key := synckey.Generate()
	snap := snapshot.Seed(time.Now())
	data, _ := json.Marshal(snap)

	return &models.ScopeRecord{
		Key:         key,
		Name:        "TeamFlow:" + key,
		Data:        data,
		LastUpdated: snap.LastUpdated,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// WithKey sets a custom key for the scope record
func (f *ScopeRecordFactory) WithKey(key string) *models.ScopeRecord {
	record := f.Create()
	record.Key = key
	record.Name = "TeamFlow:" + key
	return record
}

// WithSnapshot serializes a specific snapshot into the record payload
func (f *ScopeRecordFactory) WithSnapshot(snap snapshot.Snapshot) *models.ScopeRecord {
	record := f.Create()
	data, _ := json.Marshal(snap)
	record.Data = data
	record.LastUpdated = snap.LastUpdated
	return record
}

// WithLastUpdated sets a custom timestamp for the scope record
func (f *ScopeRecordFactory) WithLastUpdated(ts int64) *models.ScopeRecord {
	record := f.Create()
	record.LastUpdated = ts
	return record
}

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account with default values
func (f *AccountFactory) Create() *models.Account {
	id := uuid.New()
	// Unique email per account to avoid unique-index conflicts
	email := fmt.Sprintf("user-%s@test.com", id.String()[:8])

	return &models.Account{
		ID:           id,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHQ$aGFzaGVkcGFzc3dvcmQ",
		DisplayName:  "Test User",
		ScopeKey:     synckey.AccountScope(email),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// WithEmail sets a custom email (and the scope derived from it)
func (f *AccountFactory) WithEmail(email string) *models.Account {
	account := f.Create()
	account.Email = email
	account.ScopeKey = synckey.AccountScope(email)
	return account
}

// WithScopeKey points the account at a specific scope record
func (f *AccountFactory) WithScopeKey(key string) *models.Account {
	account := f.Create()
	account.ScopeKey = key
	return account
}

// SnapshotFactory provides methods to create test sync snapshots
type SnapshotFactory struct{}

// NewSnapshotFactory creates a new SnapshotFactory
func NewSnapshotFactory() *SnapshotFactory {
	return &SnapshotFactory{}
}

// Create creates an empty snapshot stamped now
func (f *SnapshotFactory) Create() snapshot.Snapshot {
	snap := snapshot.New()
	snap.Touch(time.Now())
	return snap
}

// Seeded creates a snapshot pre-filled with the demo roster
func (f *SnapshotFactory) Seeded() snapshot.Snapshot {
	return snapshot.Seed(time.Now())
}

// WithPerson creates a snapshot holding a single named person
func (f *SnapshotFactory) WithPerson(name string) snapshot.Snapshot {
	snap := f.Create()
	snap.AddPerson(snapshot.Person{ID: snapshot.NewID(), Name: name})
	return snap
}

// FactorySet bundles all factories for convenient test access
type FactorySet struct {
	ScopeRecord *ScopeRecordFactory
	Account     *AccountFactory
	Snapshot    *SnapshotFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		ScopeRecord: NewScopeRecordFactory(),
		Account:     NewAccountFactory(),
		Snapshot:    NewSnapshotFactory(),
	}
}
