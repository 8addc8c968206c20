package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// serviceCatalogService implements the ServiceCatalogSvcFacade interface
type serviceCatalogService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
}

// NewServiceCatalogService creates a new service catalog service
func NewServiceCatalogService(serviceRepo portsrepo.ServiceRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade) portssvc.ServiceCatalogSvcFacade {
	return &serviceCatalogService{
		serviceRepo: serviceRepo,
		vendorRepo:  vendorRepo,
	}
}

var _ portssvc.ServiceCatalogSvcFacade = (*serviceCatalogService)(nil)

func (s *serviceCatalogService) ListServices(ctx context.Context, query dto.ListServicesQuery) ([]domain.ServiceWithRefs, error) {
	filter := portsrepo.ServiceFilter{
		VendorID:        query.VendorID,
		IncludeInactive: query.IncludeInactive,
	}
	if query.Type != nil {
		t := domain.ServiceType(*query.Type)
		filter.Type = &t
	}

	services, err := s.serviceRepo.ListServices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list services")
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		return []domain.ServiceWithRefs{}, nil
	}
	return services, nil
}

func (s *serviceCatalogService) GetServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceWithRefs, error) {
	return s.serviceRepo.FindServiceByID(ctx, serviceID)
}

func (s *serviceCatalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error) {
	if req.MonthlyFee.IsNegative() {
		return nil, fmt.Errorf("%w: monthly_fee must not be negative", apperrors.ErrValidation)
	}

	exists, err := s.vendorRepo.VendorExists(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: vendor %d does not exist", apperrors.ErrValidation, req.VendorID)
	}

	contractStart, err := dto.ParseOptionalDate(req.ContractStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	contractEnd, err := dto.ParseOptionalDate(req.ContractEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	service := domain.Service{
		VendorID:       req.VendorID,
		Name:           req.Name,
		Description:    req.Description,
		MonthlyFee:     req.MonthlyFee,
		Type:           domain.ServiceType(req.Type),
		GLAccountID:    req.GLAccountID,
		ContractNumber: req.ContractNumber,
		ContractStart:  contractStart,
		ContractEnd:    contractEnd,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.serviceRepo.CreateService(ctx, service)
	if err != nil {
		s.LogError(ctx, err, "Failed to create service", slog.String("name", req.Name), slog.Int64("vendor_id", req.VendorID))
		return nil, err
	}

	s.LogInfo(ctx, "Service created", slog.Int64("service_id", created.ServiceID), slog.String("name", created.Name))
	return created, nil
}

func (s *serviceCatalogService) UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceRequest) (*domain.Service, error) {
	existing, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	service := existing.Service
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.MonthlyFee != nil {
		if req.MonthlyFee.IsNegative() {
			return nil, fmt.Errorf("%w: monthly_fee must not be negative", apperrors.ErrValidation)
		}
		service.MonthlyFee = *req.MonthlyFee
	}
	if req.Type != nil {
		service.Type = domain.ServiceType(*req.Type)
	}
	if req.GLAccountID != nil {
		service.GLAccountID = req.GLAccountID
	}
	if req.ContractNumber != nil {
		service.ContractNumber = *req.ContractNumber
	}
	if req.ContractStart != nil {
		start, err := dto.ParseOptionalDate(req.ContractStart)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		service.ContractStart = start
	}
	if req.ContractEnd != nil {
		end, err := dto.ParseOptionalDate(req.ContractEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		service.ContractEnd = end
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := s.serviceRepo.UpdateService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.Int64("service_id", serviceID))
		return nil, err
	}

	return &service, nil
}

// DeleteService removes a service with no transactions, deactivating
// referenced services instead.
func (s *serviceCatalogService) DeleteService(ctx context.Context, serviceID int64) (bool, error) {
	if _, err := s.serviceRepo.FindServiceByID(ctx, serviceID); err != nil {
		return false, err
	}

	count, err := s.serviceRepo.CountTransactionsByService(ctx, serviceID)
	if err != nil {
		return false, err
	}

	if count > 0 {
		if err := s.serviceRepo.DeactivateService(ctx, serviceID); err != nil {
			s.LogError(ctx, err, "Failed to deactivate service", slog.Int64("service_id", serviceID))
			return false, err
		}
		s.LogInfo(ctx, "Service deactivated", slog.Int64("service_id", serviceID), slog.Int64("transaction_count", count))
		return true, nil
	}

	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		s.LogError(ctx, err, "Failed to delete service", slog.Int64("service_id", serviceID))
		return false, err
	}
	s.LogInfo(ctx, "Service deleted", slog.Int64("service_id", serviceID))
	return false, nil
}
