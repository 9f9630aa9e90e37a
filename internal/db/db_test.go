package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := InitializeSchema(pool); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

func countRows(t *testing.T, pool *sqlx.DB, table string) int {
	t.Helper()

	var count int
	if err := pool.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	pool := newTestDB(t)

	if err := SeedDemoData(pool); err != nil {
		t.Fatalf("SeedDemoData returned error: %v", err)
	}

	products := countRows(t, pool, "products")
	orders := countRows(t, pool, "orders")
	if products == 0 || orders == 0 {
		t.Fatalf("Expected seed to populate an empty store, got %d products and %d orders", products, orders)
	}

	// A second run against the now-populated store changes nothing.
	if err := SeedDemoData(pool); err != nil {
		t.Fatalf("SeedDemoData returned error on second run: %v", err)
	}
	if got := countRows(t, pool, "products"); got != products {
		t.Errorf("Expected %d products after reseeding, got %d", products, got)
	}
	if got := countRows(t, pool, "orders"); got != orders {
		t.Errorf("Expected %d orders after reseeding, got %d", orders, got)
	}
}

func TestSeedDemoDataSkipsPopulatedStore(t *testing.T) {
	pool := newTestDB(t)

	if _, err := pool.Exec(`INSERT INTO products (name, quantity_in_stock) VALUES ('Sourdough', 7)`); err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}

	if err := SeedDemoData(pool); err != nil {
		t.Fatalf("SeedDemoData returned error: %v", err)
	}

	if got := countRows(t, pool, "products"); got != 1 {
		t.Errorf("Expected the pre-existing product to remain alone, got %d products", got)
	}
	if got := countRows(t, pool, "orders"); got != 0 {
		t.Errorf("Expected no orders seeded into a populated store, got %d", got)
	}
}
