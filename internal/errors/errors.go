// Package errors defines the sync error taxonomy. Restricted and Offline
// never reach callers of the reconciliation engine; they degrade to an
// error sync status while the application keeps serving cached data.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across the sync core.
var (
	// ErrRestricted marks a remote call that failed outside normal
	// application logic: network failure, proxy/extension blocking, or the
	// request deadline expiring. The remote may or may not hold data.
	ErrRestricted = errors.New("remote unreachable")

	// ErrScopeNotFound means the remote was reachable but holds no record
	// for the scope yet. Valid state for a brand-new scope, not a failure.
	ErrScopeNotFound = errors.New("scope not found")

	// ErrConflict marks a push rejected because the remote record is newer
	// than the snapshot being pushed.
	ErrConflict = errors.New("remote snapshot is newer")

	// ErrOffline means device-level connectivity is absent; remote calls
	// are not attempted at all.
	ErrOffline = errors.New("device is offline")

	// ErrCacheMiss means the local cache holds no snapshot for the key.
	ErrCacheMiss = errors.New("no cached snapshot")
)

// RestrictedError wraps the transport failure that caused a remote call to
// be classified restricted.
type RestrictedError struct {
	Op    string
	Cause error
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("%s restricted: %v", e.Op, e.Cause)
}

func (e *RestrictedError) Unwrap() error { return e.Cause }

// Is matches the ErrRestricted sentinel.
func (e *RestrictedError) Is(target error) bool { return target == ErrRestricted }

// ConflictError carries the remote timestamp that beat the local push
// attempt. The conflict is surfaced, never auto-merged.
type ConflictError struct {
	LocalLastUpdated  int64
	RemoteLastUpdated int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("remote snapshot is newer (remote=%d local=%d)", e.RemoteLastUpdated, e.LocalLastUpdated)
}

// Is matches the ErrConflict sentinel.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ValidationError reports a rejected field on a server-side request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Account/record errors for the scope store service.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)
