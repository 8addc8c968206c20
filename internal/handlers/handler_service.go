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

// serviceHandler handles HTTP requests related to the service catalog.
type serviceHandler struct {
	catalogService portssvc.ServiceCatalogSvcFacade
}

// newServiceHandler creates a new serviceHandler.
func newServiceHandler(cs portssvc.ServiceCatalogSvcFacade) *serviceHandler {
	return &serviceHandler{
		catalogService: cs,
	}
}

// registerServiceRoutes registers routes related to catalog services.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.ServiceCatalogSvcFacade) {
	h := newServiceHandler(catalogService)

	services := rg.Group("/services")
	{
		services.GET("", h.listServices)
		services.GET("/:id", h.getServiceByID)
		services.POST("", h.createService)
		services.PUT("/:id", h.updateService)
		services.DELETE("/:id", h.deleteService)
	}
}

func (h *serviceHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *serviceHandler) getServiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	service, err := h.catalogService.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Service not found"})
		} else {
			logger.Error("Failed to get service", slog.Int64("service_id", serviceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve service"})
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *serviceHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Vendor not found"})
		} else {
			logger.Error("Failed to create service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create service"})
		}
		return
	}

	logger.Info("Service created", slog.Int64("service_id", service.ServiceID), slog.String("name", service.Name))
	c.JSON(http.StatusCreated, service)
}

func (h *serviceHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), serviceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Service not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update service", slog.Int64("service_id", serviceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update service"})
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *serviceHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deactivated, err := h.catalogService.DeleteService(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Service not found"})
		} else {
			logger.Error("Failed to delete service", slog.Int64("service_id", serviceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete service"})
		}
		return
	}

	msg := "Service deleted"
	if deactivated {
		msg = "Service has transactions, deactivated instead of deleted"
	}
	c.JSON(http.StatusOK, dto.DeleteServiceResponse{Message: msg, Deactivated: deactivated})
}
