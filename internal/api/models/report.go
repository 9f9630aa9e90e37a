package models

// Order is a single sale as stored in the orders table. Read-only from the
// API's perspective.
type Order struct {
	ID          int64   `db:"id"`
	OrderDate   string  `db:"order_date"`
	TotalAmount float64 `db:"total_amount"`
}

// Product is an inventory row. Read-only from the API's perspective.
type Product struct {
	ID              int64  `db:"id"`
	Name            string `db:"name"`
	QuantityInStock int    `db:"quantity_in_stock"`
}

// DashboardKPIs is the response body for the dashboard endpoint.
type DashboardKPIs struct {
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int64   `json:"total_orders"`
	AverageOrder float64 `json:"average_order"`
}

// DailySales is one point of the sales trend: the summed amount for a single
// calendar day.
type DailySales struct {
	Date  string  `json:"date" db:"order_date"`
	Sales float64 `json:"sales" db:"daily_sales"`
}

// SalesTrendQuery bounds the trend to an inclusive date range. Both fields
// are optional; an empty field leaves that side unbounded.
type SalesTrendQuery struct {
	From string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Forecast is the response body for the forecast endpoint.
type Forecast struct {
	ForecastNextDay float64 `json:"forecast_next_day"`
}

// StockAlert marks a product whose stock fell below the alert threshold.
type StockAlert struct {
	Product string `json:"product"`
	Status  string `json:"status"`
}
