package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// SettingReaderSvc defines read operations for application settings.
type SettingReaderSvc interface {
	// ListSettings retrieves all settings keyed by name, each with its value,
	// description and last update time.
	ListSettings(ctx context.Context) (map[string]dto.SettingEntry, error)
	GetSettingByKey(ctx context.Context, key string) (*domain.Setting, error)

	// GetReminderDays resolves the due-soon reminder window from settings,
	// falling back to the default when the key is absent or unparsable.
	GetReminderDays(ctx context.Context) (int, error)
}

// SettingWriterSvc defines write operations for application settings.
type SettingWriterSvc interface {
	UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*domain.Setting, error)

	// UpsertSettings applies a batch of key-value pairs atomically.
	UpsertSettings(ctx context.Context, values map[string]string) error
}

// SettingSvcFacade combines all setting service interfaces.
type SettingSvcFacade interface {
	SettingReaderSvc
	SettingWriterSvc
}

// GLAccountSvcFacade defines operations for general ledger accounts.
type GLAccountSvcFacade interface {
	ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error)
	CreateGLAccount(ctx context.Context, req dto.CreateGLAccountRequest) (*domain.GLAccount, error)
}
