package purchasing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when no request has the given number.
var ErrNotFound = errors.New("purchasing: not found")

// Store wraps the purchase-request database.
type Store struct {
	db *gorm.DB
}

// Open sets up the database connection and runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("purchasing: create data dir: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("purchasing: connect: %w", err)
	}
	if err := db.AutoMigrate(&PurchaseRequest{}); err != nil {
		return nil, fmt.Errorf("purchasing: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Create persists a new purchase request.
func (s *Store) Create(pr *PurchaseRequest) error {
	if err := s.db.Create(pr).Error; err != nil {
		return fmt.Errorf("purchasing: create %s: %w", pr.Number, err)
	}
	return nil
}

// Find loads one request by its running number.
func (s *Store) Find(number string) (PurchaseRequest, error) {
	var pr PurchaseRequest
	err := s.db.Where("number = ?", number).First(&pr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PurchaseRequest{}, ErrNotFound
	}
	if err != nil {
		return PurchaseRequest{}, fmt.Errorf("purchasing: find %s: %w", number, err)
	}
	return pr, nil
}

// List returns all requests, newest first.
func (s *Store) List() ([]PurchaseRequest, error) {
	var out []PurchaseRequest
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("purchasing: list: %w", err)
	}
	return out, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
