package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, cfg, services)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	api.GET("/health", healthCheck)

	// Delegate route registration to specific handlers, passing required services
	registerVendorRoutes(api, services.Vendor)
	registerServiceRoutes(api, services.ServiceCatalog)
	registerTransactionRoutes(api, services.Transaction)
	registerBudgetRoutes(api, services.Budget)
	registerDashboardRoutes(api, services.Dashboard)
	registerReportRoutes(api, services.Report)
	registerNotificationRoutes(api, services.Notification)
	registerSettingRoutes(api, services.Setting, services.GLAccount)
}
