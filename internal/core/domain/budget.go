package domain

import "github.com/shopspring/decimal"

// Budget is an annual allocation, optionally scoped to a vendor or a
// vendor/service pair. At most one budget row exists per
// (year, vendor_id, service_id) combination.
type Budget struct {
	BudgetID     int64           `json:"id"`
	Year         int             `json:"year"`
	VendorID     *int64          `json:"vendor_id"`
	ServiceID    *int64          `json:"service_id"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Description  string          `json:"description"`
	AuditFields
}

// BudgetWithRefs is a budget joined with vendor/service display fields.
type BudgetWithRefs struct {
	Budget
	VendorName      string `json:"vendor_name"`
	VendorShortName string `json:"vendor_short_name"`
	VendorColor     string `json:"vendor_color"`
	ServiceName     string `json:"service_name"`
}
