package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service mirrors the services table.
type Service struct {
	ServiceID      int64           `json:"id"`
	VendorID       int64           `json:"vendor_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	MonthlyFee     decimal.Decimal `json:"monthly_fee"`
	Type           string          `json:"type"`
	GLAccountID    *int64          `json:"gl_account_id"`
	ContractNumber string          `json:"contract_number"`
	ContractStart  *time.Time      `json:"contract_start"`
	ContractEnd    *time.Time      `json:"contract_end"`
	IsActive       bool            `json:"is_active"`
	AuditFields
}
