package mapping

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor.
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:      d.VendorID,
		Name:          d.Name,
		ShortName:     d.ShortName,
		Color:         d.Color,
		ContactPerson: d.ContactPerson,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		NPWP:          d.NPWP,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor.
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:      m.VendorID,
		Name:          m.Name,
		ShortName:     m.ShortName,
		Color:         m.Color,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		NPWP:          m.NPWP,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
