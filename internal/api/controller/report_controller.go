package controller

import (
	"net/http"

	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/response"
	"bbdap/backend/internal/api/service"
	"bbdap/backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// ReportController serves the read-only dashboard reports.
type ReportController struct {
	reportService service.ReportService
}

// NewReportController creates a new ReportController.
func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// Dashboard handles the dashboard KPI endpoint.
func (rc *ReportController) Dashboard(c *gin.Context) {
	kpis, err := rc.reportService.DashboardKPIs(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, kpis)
}

// SalesTrend handles the per-day sales endpoint. The optional from/to query
// params bound the range and must be YYYY-MM-DD.
func (rc *ReportController) SalesTrend(c *gin.Context) {
	var q models.SalesTrendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(&q); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "from/to must be YYYY-MM-DD dates")
		return
	}

	trend, err := rc.reportService.SalesTrend(c.Request.Context(), &q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, trend)
}

// Forecast handles the 7-day moving-average forecast endpoint.
func (rc *ReportController) Forecast(c *gin.Context) {
	forecast, err := rc.reportService.Forecast(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forecast)
}

// StockAlerts handles the low-stock report endpoint.
func (rc *ReportController) StockAlerts(c *gin.Context) {
	alerts, err := rc.reportService.StockAlerts(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, alerts)
}
