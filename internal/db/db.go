package db

import (
	"fmt"
	"log/slog"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens a connection pool to the SQLite database at dbPath.
// ":memory:" is accepted for an in-memory store, which the tests rely on.
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if dbPath == ":memory:" {
		// Each sqlite connection gets its own private in-memory database,
		// so the pool must never grow past one.
		pool.SetMaxOpenConns(1)
	}
	return pool, nil
}

// InitializeSchema creates the tables if they do not exist yet.
func InitializeSchema(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_date TEXT NOT NULL,
		total_amount REAL NOT NULL CHECK (total_amount >= 0)
	);
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		quantity_in_stock INTEGER NOT NULL CHECK (quantity_in_stock >= 0)
	);
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		owner_id INTEGER NOT NULL REFERENCES users(id)
	);`

	if _, err := pool.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Info("db connection initialized and schema verified")
	return nil
}

// SeedDemoData inserts a handful of sample products and orders so the
// dashboard has something to show on a fresh install. It is a no-op when the
// products table already has rows.
func SeedDemoData(pool *sqlx.DB) error {
	var count int
	if err := pool.Get(&count, "SELECT COUNT(*) FROM products"); err != nil {
		return fmt.Errorf("failed to check for existing products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := []struct {
		name  string
		stock int
	}{
		{"Croissant", 15},
		{"Chocolate Cake", 50},
	}
	for _, p := range products {
		if _, err := pool.Exec(`INSERT INTO products (name, quantity_in_stock) VALUES (?, ?)`, p.name, p.stock); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	today := time.Now()
	orders := []struct {
		daysAgo int
		amount  float64
	}{
		{0, 42.50},
		{1, 18.00},
		{1, 23.75},
		{3, 61.20},
		{6, 9.90},
	}
	for _, o := range orders {
		date := today.AddDate(0, 0, -o.daysAgo).Format("2006-01-02")
		if _, err := pool.Exec(`INSERT INTO orders (order_date, total_amount) VALUES (?, ?)`, date, o.amount); err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
	}

	slog.Info("seeded demo data", "products", len(products), "orders", len(orders))
	return nil
}
