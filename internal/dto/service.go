package dto

import "github.com/shopspring/decimal"

// ListServicesQuery filters the service listing.
type ListServicesQuery struct {
	VendorID        *int64  `form:"vendor_id"`
	Type            *string `form:"type" binding:"omitempty,oneof=Software Network Infrastructure Security"`
	IncludeInactive bool    `form:"include_inactive"`
}

// CreateServiceRequest is the body for creating a vendor service.
type CreateServiceRequest struct {
	VendorID       int64           `json:"vendor_id" binding:"required"`
	Name           string          `json:"name" binding:"required,max=255"`
	Description    string          `json:"description"`
	MonthlyFee     decimal.Decimal `json:"monthly_fee"`
	Type           string          `json:"type" binding:"required,oneof=Software Network Infrastructure Security"`
	GLAccountID    *int64          `json:"gl_account_id"`
	ContractNumber string          `json:"contract_number" binding:"omitempty,max=100"`
	ContractStart  *string         `json:"contract_start" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd    *string         `json:"contract_end" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateServiceRequest is the body for a partial service update. Nil fields
// keep their stored value.
type UpdateServiceRequest struct {
	Name           *string          `json:"name" binding:"omitempty,max=255"`
	Description    *string          `json:"description"`
	MonthlyFee     *decimal.Decimal `json:"monthly_fee"`
	Type           *string          `json:"type" binding:"omitempty,oneof=Software Network Infrastructure Security"`
	GLAccountID    *int64           `json:"gl_account_id"`
	ContractNumber *string          `json:"contract_number" binding:"omitempty,max=100"`
	ContractStart  *string          `json:"contract_start" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd    *string          `json:"contract_end" binding:"omitempty,datetime=2006-01-02"`
	IsActive       *bool            `json:"is_active"`
}

// DeleteServiceResponse reports whether the service was removed or deactivated.
type DeleteServiceResponse struct {
	Message     string `json:"message"`
	Deactivated bool   `json:"deactivated"`
}
