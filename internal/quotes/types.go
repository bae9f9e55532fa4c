// Package quotes holds the legal department's quotation records.
package quotes

import (
	"context"
	"errors"
	"time"
)

// Status of a quotation.
type Status string

const (
	StatusApproved Status = "Approved"
	StatusPending  Status = "Pending"
	StatusExpired  Status = "Expired"
)

// ErrNotFound is returned when no quotation has the given number.
var ErrNotFound = errors.New("quotes: not found")

// Quotation is one sales quotation.
type Quotation struct {
	Number     string
	Seller     string
	Item       string
	Quantity   int
	UnitPrice  float64
	IssueDate  time.Time
	ExpiryDate time.Time
	Status     Status
	CreatedAt  time.Time
}

// Total is the quoted amount in THB.
func (q Quotation) Total() float64 {
	return float64(q.Quantity) * q.UnitPrice
}

// Store is the persistence port for quotations.
type Store interface {
	Insert(ctx context.Context, q Quotation) error
	Find(ctx context.Context, number string) (Quotation, error)
	List(ctx context.Context) ([]Quotation, error)
	Ping(ctx context.Context) error
	Close() error
}
