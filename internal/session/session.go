// Package session persists the logged-in actor between requests and
// restarts, the way the browser build kept role/username/password in
// local storage.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = errors.New("session: not found")

// Session is the persisted record of the authenticated actor.
// The password is stored as entered; hashing and expiry are explicit
// non-goals of the portal's sign-in model.
type Session struct {
	ID        string
	Role      string
	Username  string
	Password  string
	CreatedAt time.Time
}

// Store is the persistence port for sessions.
//
// Clear must be atomic from the caller's perspective: a concurrent
// reader sees either the full session or none of it, never a partial
// record.
type Store interface {
	Set(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Clear(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
