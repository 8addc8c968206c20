package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// ServiceCatalogReaderSvc defines read operations for vendor services.
type ServiceCatalogReaderSvc interface {
	ListServices(ctx context.Context, query dto.ListServicesQuery) ([]domain.ServiceWithRefs, error)
	GetServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceWithRefs, error)
}

// ServiceCatalogWriterSvc defines write operations for vendor services.
type ServiceCatalogWriterSvc interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceRequest) (*domain.Service, error)

	// DeleteService removes a service, deactivating instead when transactions
	// still reference it.
	DeleteService(ctx context.Context, serviceID int64) (deactivated bool, err error)
}

// ServiceCatalogSvcFacade combines all service catalog interfaces.
type ServiceCatalogSvcFacade interface {
	ServiceCatalogReaderSvc
	ServiceCatalogWriterSvc
}
