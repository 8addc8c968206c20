package repositories

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// SettingReader defines read operations for settings.
type SettingReader interface {
	// ListSettings retrieves every settings row.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// FindSettingByKey retrieves one setting.
	FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error)
}

// SettingWriter defines write operations for settings.
type SettingWriter interface {
	// UpsertSetting inserts or updates a single setting. A nil description
	// leaves any existing description untouched.
	UpsertSetting(ctx context.Context, key, value string, description *string) error

	// UpsertSettings applies a batch of key/value upserts atomically: either
	// every pair is written or none is.
	UpsertSettings(ctx context.Context, values map[string]string) error
}

// SettingRepositoryFacade combines all settings repository interfaces.
type SettingRepositoryFacade interface {
	SettingReader
	SettingWriter
}

// GLAccountReader defines read operations for GL account reference data.
type GLAccountReader interface {
	// ListGLAccounts retrieves all GL accounts ordered by code.
	ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error)
}

// GLAccountWriter defines write operations for GL account reference data.
type GLAccountWriter interface {
	// CreateGLAccount persists a new GL account. A duplicate code yields
	// apperrors.ErrDuplicate.
	CreateGLAccount(ctx context.Context, account domain.GLAccount) (*domain.GLAccount, error)
}

// GLAccountRepositoryFacade combines all GL account repository interfaces.
type GLAccountRepositoryFacade interface {
	GLAccountReader
	GLAccountWriter
}
