package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/bsgti/vendor_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests for derived notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvc
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvc) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvc) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/count", h.getCounts)
	}
}

func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notifications, err := h.notificationService.ListNotifications(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *notificationHandler) getCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	counts, err := h.notificationService.GetCounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to count notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, counts)
}
