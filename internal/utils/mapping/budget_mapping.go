package mapping

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:     d.BudgetID,
		Year:         d.Year,
		VendorID:     d.VendorID,
		ServiceID:    d.ServiceID,
		BudgetAmount: d.BudgetAmount,
		Description:  optString(d.Description),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:     m.BudgetID,
		Year:         m.Year,
		VendorID:     m.VendorID,
		ServiceID:    m.ServiceID,
		BudgetAmount: m.BudgetAmount,
		Description:  derefString(m.Description),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
