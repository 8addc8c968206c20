package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/bsgti/vendor_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 10

// dashboardHandler handles HTTP requests for the dashboard aggregates.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers routes related to dashboard aggregates.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/monthly-trend", h.getMonthlyTrend)
		dashboard.GET("/vendor-distribution", h.getVendorDistribution)
		dashboard.GET("/budget-vs-actual", h.getBudgetVsActual)
		dashboard.GET("/recent-transactions", h.listRecentTransactions)
	}
}

func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := parseYearQuery(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to get dashboard summary", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *dashboardHandler) getMonthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := parseYearQuery(c)
	if !ok {
		return
	}

	trend, err := h.dashboardService.GetMonthlyTrend(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to get monthly trend", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve monthly trend"})
		return
	}

	c.JSON(http.StatusOK, trend)
}

func (h *dashboardHandler) getVendorDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := parseYearQuery(c)
	if !ok {
		return
	}

	distribution, err := h.dashboardService.GetVendorDistribution(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to get vendor distribution", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve vendor distribution"})
		return
	}

	c.JSON(http.StatusOK, distribution)
}

func (h *dashboardHandler) getBudgetVsActual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := parseYearQuery(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.GetBudgetVsActual(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to get budget vs actual", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve budget comparison"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *dashboardHandler) listRecentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	transactions, err := h.dashboardService.ListRecentTransactions(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve recent transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
