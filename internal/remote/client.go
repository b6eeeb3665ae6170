// Package remote implements the sync client for the scope record store. It
// classifies failures into the sync taxonomy (restricted vs not-found vs
// conflict) and mirrors every successful result into the local cache so a
// later restricted fetch can still serve data.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/snapshot"
)

// requestTimeout bounds every remote call. An expired deadline is classified
// restricted, the same as any other transport failure.
const requestTimeout = 8 * time.Second

// Origin classifies how a fetch was satisfied. A well-formed "not found"
// response still counts as network: the remote answered, it just holds
// nothing for that scope.
type Origin string

const (
	OriginNetwork    Origin = "network"
	OriginRestricted Origin = "restricted"
)

// Mirror is the slice of the local cache the client writes through to.
type Mirror interface {
	Save(key string, snap snapshot.Snapshot) error
}

// PushResult reports the outcome of a push attempt. Exactly one of Success,
// Conflict, Restricted is set. Remote carries the newer remote snapshot on
// conflict so callers can surface it.
type PushResult struct {
	Success    bool
	Conflict   bool
	Restricted bool
	Remote     *snapshot.Snapshot
}

// scopeRecord is the wire form of one remote record per sync scope.
type scopeRecord struct {
	Key         string            `json:"key,omitempty"`
	Name        string            `json:"name"`
	Data        snapshot.Snapshot `json:"data"`
	LastUpdated int64             `json:"lastUpdated,omitempty"`
}

// Client talks to the scope record store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mirror     Mirror
}

// New creates a sync client for the store at baseURL. mirror may be nil,
// disabling cache write-through (tests).
func New(baseURL string, mirror Mirror) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		mirror:     mirror,
	}
}

// Fetch retrieves the snapshot stored under the scope key.
//
// A completed request yields OriginNetwork even when the scope has no data
// yet (ErrScopeNotFound). Transport failures and timeouts yield
// OriginRestricted with a nil snapshot; the caller falls back to the local
// cache store.
func (c *Client) Fetch(ctx context.Context, key string) (*snapshot.Snapshot, Origin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(key), nil)
	if err != nil {
		return nil, OriginRestricted, &apperrors.RestrictedError{Op: "fetch", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, OriginRestricted, &apperrors.RestrictedError{Op: "fetch", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, OriginNetwork, apperrors.ErrScopeNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, OriginRestricted, &apperrors.RestrictedError{
			Op:    "fetch",
			Cause: fmt.Errorf("cloud sync unavailable (%d)", resp.StatusCode),
		}
	}

	var record scopeRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, OriginRestricted, &apperrors.RestrictedError{Op: "fetch", Cause: err}
	}

	snap := record.Data
	c.mirrorResult(key, snap)
	return &snap, OriginNetwork, nil
}

// Push writes the snapshot under the scope key.
//
// The write is always preceded by a fresh fetch: when the remote record's
// LastUpdated is strictly newer than the snapshot being pushed, the push is
// rejected with Conflict set and no side effect. Last-write-wins is enforced
// here at the writer, not by the store.
func (c *Client) Push(ctx context.Context, key string, snap snapshot.Snapshot) (PushResult, error) {
	remote, origin, err := c.Fetch(ctx, key)
	if err != nil && origin == OriginRestricted {
		return PushResult{Restricted: true}, err
	}

	if remote != nil && remote.LastUpdated > snap.LastUpdated {
		return PushResult{Conflict: true, Remote: remote}, &apperrors.ConflictError{
			LocalLastUpdated:  snap.LastUpdated,
			RemoteLastUpdated: remote.LastUpdated,
		}
	}

	body, err := json.Marshal(scopeRecord{
		Name:        "TeamFlow:" + key,
		Data:        snap,
		LastUpdated: snap.LastUpdated,
	})
	if err != nil {
		return PushResult{}, fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.recordURL(key), bytes.NewReader(body))
	if err != nil {
		return PushResult{Restricted: true}, &apperrors.RestrictedError{Op: "push", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PushResult{Restricted: true}, &apperrors.RestrictedError{Op: "push", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		_, _ = io.Copy(io.Discard, resp.Body)
		return PushResult{Restricted: true}, &apperrors.RestrictedError{
			Op:    "push",
			Cause: fmt.Errorf("cloud sync unavailable (%d)", resp.StatusCode),
		}
	}

	c.mirrorResult(key, snap)
	return PushResult{Success: true}, nil
}

func (c *Client) recordURL(key string) string {
	return c.baseURL + "/api/v1/records/" + key
}

// mirrorResult writes through to the local cache. Mirror failures are
// swallowed: the network operation already succeeded and cache staleness
// self-heals on the next successful sync.
func (c *Client) mirrorResult(key string, snap snapshot.Snapshot) {
	if c.mirror == nil {
		return
	}
	_ = c.mirror.Save(key, snap)
}
