package quotes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS quotations (
    number      TEXT PRIMARY KEY,
    seller      TEXT NOT NULL,
    item        TEXT NOT NULL,
    quantity    INTEGER NOT NULL,
    unit_price  DOUBLE PRECISION NOT NULL,
    issue_date  TIMESTAMP NOT NULL,
    expiry_date TIMESTAMP NOT NULL,
    status      TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL
)`

// SQLStore persists quotations over database/sql. The same SQL runs on
// the local sqlite file and on Postgres (pgx stdlib driver), which is
// why placeholders use the $N form both drivers accept.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLite opens the quotation database at the given file path.
func OpenSQLite(path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("quotes: create data dir: %w", err)
	}
	return open("sqlite", path)
}

// OpenPostgres connects to Postgres with the given DSN.
func OpenPostgres(dsn string) (*SQLStore, error) {
	store, err := open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	store.db.SetMaxOpenConns(10)
	store.db.SetMaxIdleConns(10)
	store.db.SetConnMaxLifetime(30 * time.Minute)
	return store, nil
}

func open(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("quotes: open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("quotes: ensure schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// NewSQLStore wraps an existing handle; the schema must exist. Tests.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, q Quotation) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotations
		   (number, seller, item, quantity, unit_price, issue_date, expiry_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.Number, q.Seller, q.Item, q.Quantity, q.UnitPrice,
		q.IssueDate, q.ExpiryDate, string(q.Status), q.CreatedAt)
	if err != nil {
		return fmt.Errorf("quotes: insert %s: %w", q.Number, err)
	}
	return nil
}

func (s *SQLStore) Find(ctx context.Context, number string) (Quotation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT number, seller, item, quantity, unit_price, issue_date, expiry_date, status, created_at
		   FROM quotations WHERE number = $1`, number)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Quotation{}, ErrNotFound
	}
	if err != nil {
		return Quotation{}, fmt.Errorf("quotes: find %s: %w", number, err)
	}
	return q, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Quotation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT number, seller, item, quantity, unit_price, issue_date, expiry_date, status, created_at
		   FROM quotations ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("quotes: list: %w", err)
	}
	defer rows.Close()

	var out []Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("quotes: scan: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quotes: list: %w", err)
	}
	return out, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuotation(row rowScanner) (Quotation, error) {
	var (
		q      Quotation
		status string
	)
	err := row.Scan(&q.Number, &q.Seller, &q.Item, &q.Quantity, &q.UnitPrice,
		&q.IssueDate, &q.ExpiryDate, &status, &q.CreatedAt)
	if err != nil {
		return Quotation{}, err
	}
	q.Status = Status(status)
	return q, nil
}
