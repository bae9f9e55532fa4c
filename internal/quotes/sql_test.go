package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLStore(db), mock
}

func TestSQLStoreInsert(t *testing.T) {
	store, mock := newMockStore(t)

	issue := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO quotations`).
		WithArgs("QT-1", "บจก. สยามซัพพลาย", "กระดาษ A4", 200, 105.0,
			issue, expiry, "Approved", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Insert(context.Background(), Quotation{
		Number: "QT-1", Seller: "บจก. สยามซัพพลาย", Item: "กระดาษ A4",
		Quantity: 200, UnitPrice: 105, IssueDate: issue, ExpiryDate: expiry,
		Status: StatusApproved,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSQLStoreFindMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM quotations WHERE number`).
		WithArgs("QT-404").
		WillReturnRows(sqlmock.NewRows([]string{
			"number", "seller", "item", "quantity", "unit_price",
			"issue_date", "expiry_date", "status", "created_at",
		}))

	_, err := store.Find(context.Background(), "QT-404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLStoreFileRoundTripAndSeed(t *testing.T) {
	store, err := OpenSQLite(t.TempDir() + "/quotations.db")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := Seed(ctx, store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding twice must not duplicate.
	if err := Seed(ctx, store); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 seeded quotations, got %d", len(list))
	}

	q, err := store.Find(ctx, "QT-2026-0001")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if q.Status != StatusApproved || q.Quantity != 200 {
		t.Fatalf("unexpected quotation %+v", q)
	}
	if q.Total() != 200*105 {
		t.Fatalf("unexpected total %v", q.Total())
	}
}
