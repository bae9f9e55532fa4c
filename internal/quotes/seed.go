package quotes

import (
	"context"
	"time"
)

// Seed inserts the demo quotations the law dashboard lists, skipping
// numbers that already exist. Safe to run on every start.
func Seed(ctx context.Context, store Store) error {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	demo := []Quotation{
		{
			Number: "QT-2026-0001", Seller: "บจก. สยามซัพพลาย",
			Item: "กระดาษ A4 80 แกรม", Quantity: 200, UnitPrice: 105,
			IssueDate: day(2026, 6, 1), ExpiryDate: day(2026, 9, 1),
			Status: StatusApproved,
		},
		{
			Number: "QT-2026-0002", Seller: "หจก. รุ่งเรืองการช่าง",
			Item: "เก้าอี้สำนักงาน", Quantity: 24, UnitPrice: 2890,
			IssueDate: day(2026, 7, 15), ExpiryDate: day(2026, 10, 15),
			Status: StatusPending,
		},
		{
			Number: "QT-2026-0003", Seller: "Bangkok Office Tech Co., Ltd.",
			Item: "Notebook 14\" (i5/16GB)", Quantity: 10, UnitPrice: 24500,
			IssueDate: day(2026, 3, 2), ExpiryDate: day(2026, 6, 2),
			Status: StatusExpired,
		},
	}
	for _, q := range demo {
		if _, err := store.Find(ctx, q.Number); err == nil {
			continue
		}
		if err := store.Insert(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
