package repository

import (
	"context"
	"fmt"

	"bbdap/backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var reportTracer = otel.Tracer("repository.report")

// OrderTotals carries the raw aggregates for the dashboard KPIs before any
// shaping happens in the service layer.
type OrderTotals struct {
	TotalSales  float64 `db:"total_sales"`
	TotalOrders int64   `db:"total_orders"`
}

// ReportRepository defines the read-only aggregate queries over orders and
// products. Every method reflects a consistent snapshot at call time.
type ReportRepository interface {
	OrderTotals(ctx context.Context) (*OrderTotals, error)
	DailySales(ctx context.Context, from, to string) ([]models.DailySales, error)
	SalesSince(ctx context.Context, fromDate string) (float64, error)
	ProductsBelowStock(ctx context.Context, threshold int) ([]models.Product, error)
}

type sqliteReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new SQLite-based ReportRepository.
func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &sqliteReportRepository{db: db}
}

// OrderTotals returns the summed amount and row count over all orders.
// COALESCE keeps the sum at 0 for an empty table.
func (r *sqliteReportRepository) OrderTotals(ctx context.Context) (*OrderTotals, error) {
	ctx, span := reportTracer.Start(ctx, "ReportRepository.OrderTotals")
	defer span.End()

	var totals OrderTotals
	err := r.db.GetContext(ctx, &totals,
		`SELECT COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS total_orders FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order totals: %w", err)
	}
	return &totals, nil
}

// DailySales returns one row per distinct order_date in ascending date order.
// Dates are ISO strings, so lexicographic range bounds are date bounds; an
// empty bound leaves that side open.
func (r *sqliteReportRepository) DailySales(ctx context.Context, from, to string) ([]models.DailySales, error) {
	ctx, span := reportTracer.Start(ctx, "ReportRepository.DailySales")
	defer span.End()

	query := `SELECT order_date, SUM(total_amount) AS daily_sales
		FROM orders
		WHERE (? = '' OR order_date >= ?) AND (? = '' OR order_date <= ?)
		GROUP BY order_date
		ORDER BY order_date`

	trend := []models.DailySales{}
	if err := r.db.SelectContext(ctx, &trend, query, from, from, to, to); err != nil {
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	return trend, nil
}

// SalesSince sums order amounts for all orders on or after fromDate.
func (r *sqliteReportRepository) SalesSince(ctx context.Context, fromDate string) (float64, error) {
	ctx, span := reportTracer.Start(ctx, "ReportRepository.SalesSince")
	defer span.End()

	var total float64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE order_date >= ?`, fromDate)
	if err != nil {
		return 0, fmt.Errorf("failed to sum recent sales: %w", err)
	}
	return total, nil
}

// ProductsBelowStock returns products with quantity_in_stock strictly below
// threshold, in natural table order.
func (r *sqliteReportRepository) ProductsBelowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	ctx, span := reportTracer.Start(ctx, "ReportRepository.ProductsBelowStock")
	defer span.End()

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, quantity_in_stock FROM products WHERE quantity_in_stock < ?`, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query low-stock products: %w", err)
	}
	return products, nil
}
