package services

// ServiceContainer holds all service facades for dependency injection.
type ServiceContainer struct {
	Vendor         VendorSvcFacade
	ServiceCatalog ServiceCatalogSvcFacade
	Transaction    TransactionSvcFacade
	Budget         BudgetSvcFacade
	Setting        SettingSvcFacade
	GLAccount      GLAccountSvcFacade
	Dashboard      DashboardSvc
	Notification   NotificationSvc
	Report         ReportSvc
}
