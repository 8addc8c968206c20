package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VendorRepo      VendorRepositoryFacade
	ServiceRepo     ServiceRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	SettingRepo     SettingRepositoryFacade
	GLAccountRepo   GLAccountRepositoryFacade
	ReportingRepo   ReportingRepository
}
