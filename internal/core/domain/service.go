package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType categorizes a vendor service.
type ServiceType string

const (
	ServiceTypeSoftware       ServiceType = "Software"
	ServiceTypeNetwork        ServiceType = "Network"
	ServiceTypeInfrastructure ServiceType = "Infrastructure"
	ServiceTypeSecurity       ServiceType = "Security"
)

// IsValid reports whether t is one of the known service types.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeSoftware, ServiceTypeNetwork, ServiceTypeInfrastructure, ServiceTypeSecurity:
		return true
	}
	return false
}

// Service is a recurring service a vendor provides, invoiced per period.
type Service struct {
	ServiceID      int64           `json:"id"`
	VendorID       int64           `json:"vendor_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	MonthlyFee     decimal.Decimal `json:"monthly_fee"`
	Type           ServiceType     `json:"type"`
	GLAccountID    *int64          `json:"gl_account_id"`
	ContractNumber string          `json:"contract_number"`
	ContractStart  *time.Time      `json:"contract_start"`
	ContractEnd    *time.Time      `json:"contract_end"`
	IsActive       bool            `json:"is_active"`
	AuditFields
}

// ServiceWithRefs is a service joined with its vendor and GL account display fields.
type ServiceWithRefs struct {
	Service
	VendorName      string `json:"vendor_name"`
	VendorShortName string `json:"vendor_short_name"`
	VendorColor     string `json:"vendor_color"`
	GLCode          string `json:"gl_code"`
	GLName          string `json:"gl_name"`
}
