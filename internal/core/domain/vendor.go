package domain

import "github.com/shopspring/decimal"

// Vendor is a supplier the division buys services from.
type Vendor struct {
	VendorID      int64  `json:"id"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name"`
	Color         string `json:"color"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	NPWP          string `json:"npwp"`
	IsActive      bool   `json:"is_active"`
	AuditFields
}

// VendorSummary is a vendor row in the listing, enriched with transaction tallies.
type VendorSummary struct {
	Vendor
	TransactionCount  int64           `json:"transaction_count"`
	TotalTransactions decimal.Decimal `json:"total_transactions"`
	PaidCount         int64           `json:"paid_count"`
	PendingCount      int64           `json:"pending_count"`
}

// VendorDetail carries the figures shown on a single vendor page.
type VendorDetail struct {
	Vendor
	TransactionCount int64           `json:"transaction_count"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalPending     decimal.Decimal `json:"total_pending"`
}
