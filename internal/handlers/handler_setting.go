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

// settingHandler handles HTTP requests related to settings and the GL
// account reference list.
type settingHandler struct {
	settingService   portssvc.SettingSvcFacade
	glAccountService portssvc.GLAccountSvcFacade
}

// newSettingHandler creates a new settingHandler.
func newSettingHandler(ss portssvc.SettingSvcFacade, gs portssvc.GLAccountSvcFacade) *settingHandler {
	return &settingHandler{
		settingService:   ss,
		glAccountService: gs,
	}
}

// registerSettingRoutes registers routes related to settings and GL accounts.
func registerSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade, glAccountService portssvc.GLAccountSvcFacade) {
	h := newSettingHandler(settingService, glAccountService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.GET("/meta/gl-accounts", h.listGLAccounts)
		settings.POST("/meta/gl-accounts", h.createGLAccount)
		settings.GET("/:key", h.getSettingByKey)
		settings.PUT("", h.bulkUpsertSettings)
		settings.PUT("/:key", h.upsertSetting)
	}
}

func (h *settingHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *settingHandler) getSettingByKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	setting, err := h.settingService.GetSettingByKey(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Setting not found"})
		} else {
			logger.Error("Failed to get setting", slog.String("key", key), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve setting"})
		}
		return
	}

	c.JSON(http.StatusOK, setting)
}

func (h *settingHandler) upsertSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	setting, err := h.settingService.UpsertSetting(c.Request.Context(), key, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to upsert setting", slog.String("key", key), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save setting"})
		}
		return
	}

	c.JSON(http.StatusOK, setting)
}

func (h *settingHandler) bulkUpsertSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpsertSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.settingService.UpsertSettings(c.Request.Context(), req.Settings); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to bulk upsert settings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save settings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Settings saved"})
}

func (h *settingHandler) listGLAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.glAccountService.ListGLAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list GL accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list GL accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *settingHandler) createGLAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGLAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGLAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.glAccountService.CreateGLAccount(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "GL account code '" + req.Code + "' already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create GL account", slog.String("code", req.Code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create GL account"})
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}
