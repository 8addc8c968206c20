package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/bsgti/vendor_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// reportHandler handles HTTP requests for file exports.
type reportHandler struct {
	reportService portssvc.ReportSvc
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvc) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to report exports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvc) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/transactions/csv", h.exportTransactionsCSV)
		reports.GET("/transactions/excel", h.exportTransactionsExcel)
		reports.GET("/budget/excel", h.exportBudgetExcel)
		reports.GET("/transactions/:id/pdf", h.exportPaymentProofPDF)
	}
}

// sendAttachment writes a generated file as a download response.
func sendAttachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *reportHandler) exportTransactionsCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	data, filename, err := h.reportService.ExportTransactionsCSV(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to export transactions CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate CSV export"})
		return
	}

	sendAttachment(c, contentTypeCSV, filename, data)
}

func (h *reportHandler) exportTransactionsExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	data, filename, err := h.reportService.ExportTransactionsExcel(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to export transactions workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate Excel export"})
		return
	}

	sendAttachment(c, contentTypeXLSX, filename, data)
}

func (h *reportHandler) exportBudgetExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := parseYearQuery(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.ExportBudgetExcel(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to export budget workbook", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate budget export"})
		return
	}

	sendAttachment(c, contentTypeXLSX, filename, data)
}

func (h *reportHandler) exportPaymentProofPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.reportService.ExportPaymentProofPDF(c.Request.Context(), txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Transaction not found"})
		} else {
			logger.Error("Failed to export payment proof", slog.Int64("transaction_id", txnID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate payment proof"})
		}
		return
	}

	sendAttachment(c, contentTypePDF, filename, data)
}
