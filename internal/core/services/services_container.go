package services

import (
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Vendor = NewVendorService(repos.VendorRepo, repos.ServiceRepo, repos.TransactionRepo)
	container.ServiceCatalog = NewServiceCatalogService(repos.ServiceRepo, repos.VendorRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.VendorRepo, repos.ServiceRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.VendorRepo, repos.ServiceRepo)
	container.Setting = NewSettingService(repos.SettingRepo)
	container.GLAccount = NewGLAccountService(repos.GLAccountRepo)

	// Derived services sit on top of the core ones.
	container.Dashboard = NewDashboardService(repos.ReportingRepo, repos.TransactionRepo)
	container.Notification = NewNotificationService(repos.TransactionRepo, repos.ReportingRepo, container.Setting)
	container.Report = NewReportService(repos.TransactionRepo, container.Dashboard, container.Setting)

	return container
}
