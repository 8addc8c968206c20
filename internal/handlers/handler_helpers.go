package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// parseYearQuery reads the optional ?year= query parameter, defaulting to the
// current year. On a malformed value it writes a 400 response and returns false.
func parseYearQuery(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year parameter"})
		return 0, false
	}
	return year, true
}
