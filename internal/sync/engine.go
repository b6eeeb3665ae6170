// Package sync contains the reconciliation engine: the state machine tying
// the local cache, the remote sync client, and the in-memory snapshot
// together. It orchestrates fetch-on-load, heartbeat polling, debounced
// push-on-change, and last-write-wins conflict detection.
//
// The engine never lets a remote failure escape to its caller: every remote
// problem degrades to an error sync status and the operation is retryable on
// the next heartbeat or an explicit Reconcile.
package sync

import (
	"context"
	"errors"
	"sync"
	"time"

	"teamflow-backend/internal/availability"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/logger"
	"teamflow-backend/internal/remote"
	"teamflow-backend/internal/snapshot"
	"teamflow-backend/internal/synckey"
)

// Config tunes the engine timers and seeding behavior.
type Config struct {
	// HeartbeatInterval is the cadence of silent background fetches.
	HeartbeatInterval time.Duration
	// PushDebounce is how long after the last mutation a push fires. Each
	// new mutation cancels the pending push and schedules a fresh one.
	PushDebounce time.Duration
	// SeedOnFresh populates a brand-new scope (no cache, no remote data)
	// with the demo team instead of an empty dashboard.
	SeedOnFresh bool
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the production timer settings.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: 15 * time.Second,
		PushDebounce:      2 * time.Second,
		Now:               time.Now,
	}
}

// Engine owns the in-memory working snapshot for one sync scope.
//
// Lifecycle: construct on session start, Start once, Stop on logout. An
// engine is never shared across scopes; JoinScope re-keys this engine and
// discards any in-flight results from the previous scope.
type Engine struct {
	cfg    Config
	log    *logger.Logger
	remote RemoteStore
	cache  CacheStore

	mu       sync.Mutex
	scopeKey string
	// generation increments on every scope switch and teardown. In-flight
	// remote results check it on arrival and are dropped when stale.
	generation     int
	snap           snapshot.Snapshot
	state          State
	lastPushedHash string
	conflictRemote *snapshot.Snapshot

	pushTimer     *time.Timer
	fetchInFlight bool
	pushInFlight  bool

	ctx       context.Context
	cancel    context.CancelFunc
	heartbeat *time.Ticker
	done      chan struct{}
}

// NewEngine creates an engine for the given scope key. Call Start to load
// state and begin syncing.
func NewEngine(cfg Config, scopeKey string, remoteStore RemoteStore, cacheStore CacheStore, log *logger.Logger) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 15 * time.Second
	}
	if cfg.PushDebounce <= 0 {
		cfg.PushDebounce = 2 * time.Second
	}
	if log == nil {
		log = logger.New()
	}
	return &Engine{
		cfg:      cfg,
		log:      log.WithField("component", "sync"),
		remote:   remoteStore,
		cache:    cacheStore,
		scopeKey: scopeKey,
		snap:     snapshot.New(),
		state:    State{Status: StatusIdle},
	}
}

// Start loads the cached snapshot so callers render immediately, then runs a
// forced remote-authoritative reconciliation and begins the heartbeat loop.
// It blocks only for the initial reconciliation, never on the heartbeat.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	e.ctx, e.cancel = context.WithCancel(ctx)
	key := e.scopeKey

	cached, err := e.cache.Load(key)
	switch {
	case err == nil:
		e.snap = cached
		e.log.WithField("scope", key).Debug("loaded snapshot from cache")
	case errors.Is(err, apperrors.ErrCacheMiss):
		if e.cfg.SeedOnFresh {
			e.snap = snapshot.Seed(e.cfg.Now())
			e.log.WithField("scope", key).Info("fresh scope, seeded demo data")
		}
	default:
		// A broken cache must not block startup; remote or seed data will
		// repopulate it.
		e.log.WithField("scope", key).Warnf("cache load failed: %v", err)
		if e.cfg.SeedOnFresh {
			e.snap = snapshot.Seed(e.cfg.Now())
		}
	}
	e.mu.Unlock()

	if key != "" {
		e.Reconcile(ctx, true)
	}

	e.mu.Lock()
	e.heartbeat = time.NewTicker(e.cfg.HeartbeatInterval)
	e.done = make(chan struct{})
	e.mu.Unlock()
	go e.heartbeatLoop()
	return nil
}

// Stop tears the engine down: heartbeat stopped, pending push cancelled,
// in-flight results from this scope discarded on arrival. Local state is
// already durable in the cache store.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.generation++
	if e.pushTimer != nil {
		e.pushTimer.Stop()
		e.pushTimer = nil
	}
	cancel := e.cancel
	done := e.done
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (e *Engine) heartbeatLoop() {
	defer close(e.done)
	for {
		select {
		case <-e.ctx.Done():
			e.heartbeat.Stop()
			return
		case <-e.heartbeat.C:
			// Silent fetch: never shows syncing, dropped when a forced
			// fetch is already in flight or the device is offline.
			e.Reconcile(e.ctx, false)
		}
	}
}

// Reconcile fetches the remote snapshot and merges it by last-write-wins:
// a strictly newer remote replaces the in-memory state. force marks
// user-initiated or initial-load operations, which display syncing while in
// flight; heartbeat ticks pass force=false and never regress the status.
func (e *Engine) Reconcile(ctx context.Context, force bool) {
	e.mu.Lock()
	if e.scopeKey == "" || e.state.Offline || e.fetchInFlight {
		e.mu.Unlock()
		return
	}
	e.fetchInFlight = true
	gen := e.generation
	key := e.scopeKey
	if force {
		e.setStatusLocked(StatusSyncing)
	}
	e.mu.Unlock()

	snap, origin, err := e.remote.Fetch(ctx, key)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.fetchInFlight = false
	if gen != e.generation {
		// Scope changed while the fetch was in flight; result is stale.
		return
	}

	switch {
	case err != nil && errors.Is(err, apperrors.ErrScopeNotFound):
		// Remote reachable, scope empty. Local state stands; the pending
		// push (if any) will populate the scope.
		e.setStatusLocked(StatusSynced)
	case err != nil:
		e.log.WithField("scope", key).Warnf("reconcile fetch failed: %v", err)
		e.setStatusLocked(StatusError)
		return
	case snap.LastUpdated > e.snap.LastUpdated:
		e.snap = snap.Clone()
		e.lastPushedHash = e.snap.Hash()
		e.conflictRemote = nil
		if err := e.cache.Save(key, e.snap); err != nil {
			e.log.WithField("scope", key).Warnf("cache save failed: %v", err)
		}
		e.setStatusLocked(StatusSynced)
		e.state.LastSyncedAt = e.cfg.Now()
		e.log.WithField("scope", key).Info("applied newer remote snapshot")
	default:
		// Nothing newer. A completed network round-trip is explicit
		// confirmation of freshness.
		if origin == remote.OriginNetwork {
			e.setStatusLocked(StatusSynced)
		} else {
			e.setStatusLocked(StatusIdle)
		}
	}

	// Local edits that never made it out (offline stretch, earlier failure)
	// are re-scheduled after every successful fetch.
	if e.snap.Hash() != e.lastPushedHash {
		e.schedulePushLocked()
	}
}

// JoinScope switches this engine to a different sync key. Remote data fully
// replaces the in-memory state; an empty remote resets it to an empty
// snapshot; an unreachable remote falls back to the new scope's cached
// snapshot when one exists. Data is never merged across scopes.
func (e *Engine) JoinScope(ctx context.Context, key string) error {
	key = synckey.Normalize(key)

	e.mu.Lock()
	e.generation++
	gen := e.generation
	if e.pushTimer != nil {
		e.pushTimer.Stop()
		e.pushTimer = nil
	}
	e.scopeKey = key
	e.conflictRemote = nil
	e.setStatusLocked(StatusSyncing)
	e.mu.Unlock()

	snap, origin, err := e.remote.Fetch(ctx, key)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation {
		return nil
	}

	switch {
	case err == nil:
		e.snap = snap.Clone()
		e.lastPushedHash = e.snap.Hash()
		if origin == remote.OriginNetwork {
			e.setStatusLocked(StatusSynced)
		} else {
			e.setStatusLocked(StatusIdle)
		}
		e.state.LastSyncedAt = e.cfg.Now()
		e.saveCacheLocked(key)
	case errors.Is(err, apperrors.ErrScopeNotFound):
		// New team: initialize empty, never carry the previous scope over.
		e.snap = snapshot.New()
		e.lastPushedHash = e.snap.Hash()
		e.setStatusLocked(StatusIdle)
		e.saveCacheLocked(key)
	default:
		// Remote unreachable. The scope may have been synced on this device
		// before; serve its cached copy rather than erasing it. Only a scope
		// with no cached history starts empty.
		if cached, cerr := e.cache.Load(key); cerr == nil {
			e.snap = cached
		} else {
			e.snap = snapshot.New()
		}
		e.lastPushedHash = e.snap.Hash()
		e.setStatusLocked(StatusError)
	}

	e.log.WithField("scope", key).Info("joined sync scope")
	return nil
}

// SetConnectivity informs the engine of device-level connectivity. Going
// offline forces an error status and suspends heartbeat merges and pushes;
// mutations keep landing in the cache. Coming back online triggers an
// immediate forced reconciliation.
func (e *Engine) SetConnectivity(online bool) {
	e.mu.Lock()
	if !online {
		e.state.Offline = true
		if e.pushTimer != nil {
			e.pushTimer.Stop()
			e.pushTimer = nil
		}
		e.setStatusLocked(StatusError)
		e.mu.Unlock()
		e.log.Info("connectivity lost")
		return
	}
	wasOffline := e.state.Offline
	e.state.Offline = false
	ctx := e.ctx
	e.mu.Unlock()

	if wasOffline {
		e.log.Info("connectivity restored, reconciling")
		if ctx == nil {
			ctx = context.Background()
		}
		e.Reconcile(ctx, true)
	}
}

// State returns a copy of the current sync state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot returns a deep copy of the in-memory working snapshot.
func (e *Engine) Snapshot() snapshot.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap.Clone()
}

// ConflictRemote returns the newer remote snapshot that rejected the last
// push, or nil. The engine surfaces conflicts; resolution (re-push, discard
// local, prompt) is the caller's decision.
func (e *Engine) ConflictRemote() *snapshot.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.conflictRemote == nil {
		return nil
	}
	c := e.conflictRemote.Clone()
	return &c
}

// saveCacheLocked writes the working snapshot through to the cache store.
// Callers hold e.mu.
func (e *Engine) saveCacheLocked(key string) {
	if err := e.cache.Save(key, e.snap); err != nil {
		e.log.WithField("scope", key).Warnf("cache save failed: %v", err)
	}
}

// setStatusLocked applies a status transition. Callers hold e.mu.
func (e *Engine) setStatusLocked(s Status) {
	if e.state.Status != s {
		e.log.WithField("from", string(e.state.Status)).WithField("to", string(s)).Debug("sync status transition")
	}
	e.state.Status = s
}

// mutate applies fn to the working snapshot; on change it stamps
// LastUpdated, writes the cache synchronously, and schedules a debounced
// push. This is the single local-mutation path.
func (e *Engine) mutate(fn func(*snapshot.Snapshot) bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !fn(&e.snap) {
		return false
	}
	e.snap.Touch(e.cfg.Now())
	if e.scopeKey != "" {
		if err := e.cache.Save(e.scopeKey, e.snap); err != nil {
			e.log.WithField("scope", e.scopeKey).Warnf("cache save failed: %v", err)
		}
	}
	e.schedulePushLocked()
	return true
}

// schedulePushLocked arms the debounce timer unless the snapshot content
// already matches the last successfully pushed hash. A pending timer is
// always replaced: last scheduled wins, so at most one push is in flight.
// Callers hold e.mu.
func (e *Engine) schedulePushLocked() {
	if e.scopeKey == "" || e.state.Offline {
		return
	}
	if e.snap.Hash() == e.lastPushedHash {
		return
	}
	if e.pushTimer != nil {
		e.pushTimer.Stop()
	}
	gen := e.generation
	e.pushTimer = time.AfterFunc(e.cfg.PushDebounce, func() {
		e.flushPush(gen)
	})
}

// flushPush performs the debounced push of the latest snapshot with a
// freshly stamped LastUpdated. The remote client re-fetches before writing,
// so the push is always preceded by a conflict check.
func (e *Engine) flushPush(gen int) {
	e.mu.Lock()
	if gen != e.generation || e.state.Offline {
		e.mu.Unlock()
		return
	}
	if e.pushInFlight {
		// A push is already on the wire; try again after another debounce
		// window instead of waiting for the next heartbeat.
		e.pushTimer = time.AfterFunc(e.cfg.PushDebounce, func() {
			e.flushPush(gen)
		})
		e.mu.Unlock()
		return
	}
	if e.snap.Hash() == e.lastPushedHash {
		// The in-flight push already delivered this content.
		e.mu.Unlock()
		return
	}
	e.pushInFlight = true
	key := e.scopeKey
	e.snap.Touch(e.cfg.Now())
	snap := e.snap.Clone()
	hash := snap.Hash()
	ctx := e.ctx
	e.setStatusLocked(StatusSyncing)
	e.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	res, err := e.remote.Push(ctx, key, snap)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.pushInFlight = false
	if gen != e.generation {
		return
	}

	switch {
	case res.Success:
		e.lastPushedHash = hash
		e.conflictRemote = nil
		e.setStatusLocked(StatusSynced)
		e.state.LastSyncedAt = e.cfg.Now()
	case res.Conflict:
		// Remote wins are not auto-merged. Surface and stand by.
		e.conflictRemote = res.Remote
		e.setStatusLocked(StatusConflict)
		e.log.WithField("scope", key).Warnf("push rejected: %v", err)
	default:
		// Restricted. The mutation stays local; the next heartbeat or
		// explicit reconcile retries.
		e.setStatusLocked(StatusError)
		e.log.WithField("scope", key).Warnf("push failed: %v", err)
	}
}

// Availability evaluates the person's live status against the working
// snapshot at the engine's current clock instant.
func (e *Engine) Availability(personID string) availability.Result {
	e.mu.Lock()
	schedule := make([]snapshot.ScheduleEntry, len(e.snap.Schedule))
	copy(schedule, e.snap.Schedule)
	now := e.cfg.Now()
	e.mu.Unlock()
	return availability.Evaluate(personID, schedule, now)
}

// --- Local mutation operations -----------------------------------------

// AddPerson appends a person to the team.
func (e *Engine) AddPerson(p snapshot.Person) {
	e.mutate(func(s *snapshot.Snapshot) bool {
		s.AddPerson(p)
		return true
	})
}

// UpdatePerson replaces an existing person.
func (e *Engine) UpdatePerson(p snapshot.Person) bool {
	return e.mutate(func(s *snapshot.Snapshot) bool {
		return s.UpdatePerson(p)
	})
}

// DeletePerson removes a person and every schedule entry they own.
func (e *Engine) DeletePerson(id string) bool {
	return e.mutate(func(s *snapshot.Snapshot) bool {
		return s.DeletePerson(id)
	})
}

// MovePerson shifts a person up (-1) or down (+1) in display order.
func (e *Engine) MovePerson(id string, delta int) bool {
	return e.mutate(func(s *snapshot.Snapshot) bool {
		return s.MovePerson(id, delta)
	})
}

// AddEntry appends a schedule entry.
func (e *Engine) AddEntry(entry snapshot.ScheduleEntry) {
	e.mutate(func(s *snapshot.Snapshot) bool {
		s.AddEntry(entry)
		return true
	})
}

// AddEntries appends a batch of schedule entries (bulk import, assistant
// proposals).
func (e *Engine) AddEntries(entries []snapshot.ScheduleEntry) {
	if len(entries) == 0 {
		return
	}
	e.mutate(func(s *snapshot.Snapshot) bool {
		s.AddEntries(entries)
		return true
	})
}

// UpdateEntry replaces an existing schedule entry.
func (e *Engine) UpdateEntry(entry snapshot.ScheduleEntry) bool {
	return e.mutate(func(s *snapshot.Snapshot) bool {
		return s.UpdateEntry(entry)
	})
}

// DeleteEntry removes a schedule entry.
func (e *Engine) DeleteEntry(id string) bool {
	return e.mutate(func(s *snapshot.Snapshot) bool {
		return s.DeleteEntry(id)
	})
}

// UpdateProfile replaces the account profile.
func (e *Engine) UpdateProfile(p snapshot.Profile) {
	e.mutate(func(s *snapshot.Snapshot) bool {
		s.SetProfile(p)
		return true
	})
}
