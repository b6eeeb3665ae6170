package sync

import (
	"context"
	"time"

	"teamflow-backend/internal/remote"
	"teamflow-backend/internal/snapshot"
)

// Status is the sync health shown to the presentation layer. It is driven
// solely by reconciliation engine transitions.
type Status string

const (
	// StatusIdle: no remote scope configured, or remote reachable but
	// nothing newer either way.
	StatusIdle Status = "idle"
	// StatusSyncing: a user-initiated or initial-load operation is in
	// flight. Silent background heartbeats never show this.
	StatusSyncing Status = "syncing"
	// StatusSynced: the last operation against the remote succeeded.
	StatusSynced Status = "synced"
	// StatusError: remote unreachable or the device is offline.
	StatusError Status = "error"
	// StatusConflict: a push was rejected because the remote is newer.
	StatusConflict Status = "conflict"
)

// State is the transient process-wide sync state. It is rebuilt from
// reconciliation outcomes and never persisted.
type State struct {
	Status       Status
	LastSyncedAt time.Time
	Offline      bool
}

// RemoteStore is the slice of the remote sync client the engine depends on.
type RemoteStore interface {
	Fetch(ctx context.Context, key string) (*snapshot.Snapshot, remote.Origin, error)
	Push(ctx context.Context, key string, snap snapshot.Snapshot) (remote.PushResult, error)
}

// CacheStore is the slice of the local cache store the engine depends on.
type CacheStore interface {
	Save(key string, snap snapshot.Snapshot) error
	Load(key string) (snapshot.Snapshot, error)
}
