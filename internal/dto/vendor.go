package dto

import "github.com/bsgti/vendor_budget_app/internal/core/domain"

// CreateVendorRequest is the body for creating a vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	ShortName     string `json:"short_name" binding:"required,max=50"`
	Color         string `json:"color" binding:"omitempty,max=20"`
	ContactPerson string `json:"contact_person" binding:"omitempty,max=255"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"omitempty,max=50"`
	Address       string `json:"address"`
	NPWP          string `json:"npwp" binding:"omitempty,max=50"`
}

// UpdateVendorRequest is the body for a partial vendor update. Nil fields
// keep their stored value.
type UpdateVendorRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=255"`
	ShortName     *string `json:"short_name" binding:"omitempty,max=50"`
	Color         *string `json:"color" binding:"omitempty,max=20"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	NPWP          *string `json:"npwp" binding:"omitempty,max=50"`
	IsActive      *bool   `json:"is_active"`
}

// VendorDetailResponse is one vendor together with its active services and
// recent transactions.
type VendorDetailResponse struct {
	domain.VendorDetail
	Services           []domain.ServiceWithRefs     `json:"services"`
	RecentTransactions []domain.TransactionWithRefs `json:"recent_transactions"`
}

// DeleteVendorResponse reports whether the vendor was removed or deactivated.
type DeleteVendorResponse struct {
	Message     string `json:"message"`
	Deactivated bool   `json:"deactivated"`
}
