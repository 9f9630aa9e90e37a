package service

import (
	"context"
	"math"
	"time"

	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/repository"
)

const (
	// lowStockThreshold: a product with strictly fewer units in stock is
	// flagged on the stock-alert report.
	lowStockThreshold = 20

	// forecastWindowDays is the size of the trailing moving-average window.
	forecastWindowDays = 7

	dateLayout = "2006-01-02"

	lowStockStatus = "LOW STOCK"
)

// ReportService shapes the aggregate queries into the dashboard reports.
type ReportService interface {
	DashboardKPIs(ctx context.Context) (*models.DashboardKPIs, error)
	SalesTrend(ctx context.Context, q *models.SalesTrendQuery) ([]models.DailySales, error)
	Forecast(ctx context.Context) (*models.Forecast, error)
	StockAlerts(ctx context.Context) ([]models.StockAlert, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo, now: time.Now}
}

// DashboardKPIs returns total sales, order count and the average order value.
// The average is 0 when there are no orders.
func (s *reportService) DashboardKPIs(ctx context.Context) (*models.DashboardKPIs, error) {
	totals, err := s.reportRepo.OrderTotals(ctx)
	if err != nil {
		return nil, err
	}

	kpis := &models.DashboardKPIs{
		TotalSales:  totals.TotalSales,
		TotalOrders: totals.TotalOrders,
	}
	if totals.TotalOrders > 0 {
		kpis.AverageOrder = round2(totals.TotalSales / float64(totals.TotalOrders))
	}
	return kpis, nil
}

// SalesTrend returns per-day sales in ascending date order, optionally
// bounded to an inclusive date range.
func (s *reportService) SalesTrend(ctx context.Context, q *models.SalesTrendQuery) ([]models.DailySales, error) {
	var from, to string
	if q != nil {
		from, to = q.From, q.To
	}
	return s.reportRepo.DailySales(ctx, from, to)
}

// Forecast predicts the next day's sales as the trailing 7-day moving
// average: the sum over orders dated within the last 7 calendar days
// (inclusive lower bound), divided by 7.
func (s *reportService) Forecast(ctx context.Context) (*models.Forecast, error) {
	fromDate := s.now().AddDate(0, 0, -forecastWindowDays).Format(dateLayout)
	total, err := s.reportRepo.SalesSince(ctx, fromDate)
	if err != nil {
		return nil, err
	}
	return &models.Forecast{ForecastNextDay: round2(total / forecastWindowDays)}, nil
}

// StockAlerts flags every product below the stock threshold, in the store's
// natural order.
func (s *reportService) StockAlerts(ctx context.Context) ([]models.StockAlert, error) {
	products, err := s.reportRepo.ProductsBelowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.StockAlert, 0, len(products))
	for _, p := range products {
		alerts = append(alerts, models.StockAlert{Product: p.Name, Status: lowStockStatus})
	}
	return alerts, nil
}

// round2 rounds to two decimal places, matching the report contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
