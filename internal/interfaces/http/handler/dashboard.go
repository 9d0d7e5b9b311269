package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerview/backend/internal/application/dashboard"
	"github.com/ledgerview/backend/internal/interfaces/http/dto"
)

// DashboardHandler handles the fiscal-year dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	metricsService *dashboard.MetricsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(metricsService *dashboard.MetricsService) *DashboardHandler {
	return &DashboardHandler{
		metricsService: metricsService,
	}
}

// GetMetrics returns the summary cards for a fiscal year.
// The fy query parameter is optional; when absent, the fiscal year
// containing the current date is used.
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.DashboardQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	metrics, err := h.metricsService.GetMetrics(c.Request.Context(), tenantID, req.FiscalYear, time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, metrics)
}

// GetMonthlySeries returns the April-through-March sales and collections
// series for a fiscal year.
func (h *DashboardHandler) GetMonthlySeries(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req dto.DashboardQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	series, err := h.metricsService.GetMonthlySeries(c.Request.Context(), tenantID, req.FiscalYear, time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, series)
}

// ListFiscalYears returns the fiscal-year labels available for selection,
// newest first, always including the current fiscal year.
func (h *DashboardHandler) ListFiscalYears(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	years, err := h.metricsService.ListFiscalYears(c.Request.Context(), tenantID, time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, years)
}

// RegisterRoutes registers all dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/metrics", h.GetMetrics)
		dash.GET("/monthly-series", h.GetMonthlySeries)
		dash.GET("/fiscal-years", h.ListFiscalYears)
	}
}
