package dto

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest creates a budget or replaces the amount of the existing
// row sharing the same (year, vendor, service) key.
type UpsertBudgetRequest struct {
	Year         int             `json:"year" binding:"required,gte=2020,lte=2100"`
	VendorID     *int64          `json:"vendor_id"`
	ServiceID    *int64          `json:"service_id"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Description  string          `json:"description"`
}

// UpdateBudgetRequest is the body for a partial budget update. Nil fields
// keep their stored value.
type UpdateBudgetRequest struct {
	BudgetAmount *decimal.Decimal `json:"budget_amount"`
	Description  *string          `json:"description"`
}

// BudgetYearSummaryResponse is a year's budget rows with their grand total.
type BudgetYearSummaryResponse struct {
	Year        int                     `json:"year"`
	Budgets     []domain.BudgetWithRefs `json:"budgets"`
	TotalBudget decimal.Decimal         `json:"totalBudget"`
}
