package mapping

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/models"
)

// ToDomainSetting converts a model Setting to a domain Setting.
func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{
		Key:         m.Key,
		Value:       m.Value,
		Description: derefString(m.Description),
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainSettingSlice converts a slice of model Settings to domain Settings.
func ToDomainSettingSlice(ms []models.Setting) []domain.Setting {
	ds := make([]domain.Setting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSetting(m)
	}
	return ds
}

// ToDomainGLAccount converts a model GLAccount to a domain GLAccount.
func ToDomainGLAccount(m models.GLAccount) domain.GLAccount {
	return domain.GLAccount{
		GLAccountID: m.GLAccountID,
		Code:        m.Code,
		Name:        m.Name,
		Category:    derefString(m.Category),
	}
}

// ToDomainGLAccountSlice converts a slice of model GLAccounts to domain GLAccounts.
func ToDomainGLAccountSlice(ms []models.GLAccount) []domain.GLAccount {
	ds := make([]domain.GLAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGLAccount(m)
	}
	return ds
}
