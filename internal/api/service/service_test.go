package service

import (
	"testing"

	"bbdap/backend/internal/db"

	"github.com/jmoiron/sqlx"
)

// newTestDB opens a fresh in-memory store with the full schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := db.Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := db.InitializeSchema(pool); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

func insertOrder(t *testing.T, pool *sqlx.DB, date string, amount float64) {
	t.Helper()
	if _, err := pool.Exec(`INSERT INTO orders (order_date, total_amount) VALUES (?, ?)`, date, amount); err != nil {
		t.Fatalf("failed to insert order: %v", err)
	}
}

func insertProduct(t *testing.T, pool *sqlx.DB, name string, stock int) {
	t.Helper()
	if _, err := pool.Exec(`INSERT INTO products (name, quantity_in_stock) VALUES (?, ?)`, name, stock); err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}
}
