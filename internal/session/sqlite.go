package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id         TEXT PRIMARY KEY,
    role       TEXT NOT NULL,
    username   TEXT NOT NULL,
    password   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
)`

// SQLStore persists sessions in a sqlite file scoped to the portal's
// data directory, so a login survives a service restart.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the session database at path.
func OpenSQLite(path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("session: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session: open db: %w", err)
	}
	store := &SQLStore{db: db}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session: ensure schema: %w", err)
	}
	return store, nil
}

// NewSQLStore wraps an existing database handle. The schema must
// already exist; used by tests.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Set(ctx context.Context, sess Session) error {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, role, username, password, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET role = $2, username = $3, password = $4`,
		sess.ID, sess.Role, sess.Username, sess.Password, sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("session: set: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, role, username, password, created_at FROM sessions WHERE id = $1`, id)
	var sess Session
	err := row.Scan(&sess.ID, &sess.Role, &sess.Username, &sess.Password, &sess.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: get: %w", err)
	}
	return sess, nil
}

// Clear removes the whole record in one statement, so a reader never
// observes a half-cleared session.
func (s *SQLStore) Clear(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
