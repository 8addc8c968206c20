package models

import "github.com/shopspring/decimal"

// Budget mirrors the budgets table.
type Budget struct {
	BudgetID     int64           `json:"id"`
	Year         int             `json:"year"`
	VendorID     *int64          `json:"vendor_id"`
	ServiceID    *int64          `json:"service_id"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Description  *string         `json:"description"`
	AuditFields
}
