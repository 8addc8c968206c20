package mapping

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/models"
)

// ToModelService converts a domain Service to a model Service.
func ToModelService(d domain.Service) models.Service {
	return models.Service{
		ServiceID:      d.ServiceID,
		VendorID:       d.VendorID,
		Name:           d.Name,
		Description:    d.Description,
		MonthlyFee:     d.MonthlyFee,
		Type:           string(d.Type),
		GLAccountID:    d.GLAccountID,
		ContractNumber: d.ContractNumber,
		ContractStart:  d.ContractStart,
		ContractEnd:    d.ContractEnd,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainService converts a model Service to a domain Service.
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:      m.ServiceID,
		VendorID:       m.VendorID,
		Name:           m.Name,
		Description:    m.Description,
		MonthlyFee:     m.MonthlyFee,
		Type:           domain.ServiceType(m.Type),
		GLAccountID:    m.GLAccountID,
		ContractNumber: m.ContractNumber,
		ContractStart:  m.ContractStart,
		ContractEnd:    m.ContractEnd,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
