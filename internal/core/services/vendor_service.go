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

const vendorRecentTxnLimit = 10

// vendorService implements the VendorSvcFacade interface
type vendorService struct {
	BaseService
	vendorRepo  portsrepo.VendorRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{
		vendorRepo:  vendorRepo,
		serviceRepo: serviceRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.VendorSummary, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if vendors == nil {
		return []domain.VendorSummary{}, nil
	}
	return vendors, nil
}

// GetVendorByID assembles the vendor detail page: the vendor with its
// figures, its active services and its most recent transactions.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID int64) (*dto.VendorDetailResponse, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.ListServices(ctx, portsrepo.ServiceFilter{VendorID: &vendorID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendor services", slog.Int64("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list vendor services: %w", err)
	}

	txns, _, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		VendorID: &vendorID,
		Page:     1,
		Limit:    vendorRecentTxnLimit,
		SortBy:   "invoice_date",
		SortDesc: true,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendor transactions", slog.Int64("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list vendor transactions: %w", err)
	}

	if services == nil {
		services = []domain.ServiceWithRefs{}
	}
	if txns == nil {
		txns = []domain.TransactionWithRefs{}
	}

	return &dto.VendorDetailResponse{
		VendorDetail:       *vendor,
		Services:           services,
		RecentTransactions: txns,
	}, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		Name:          req.Name,
		ShortName:     req.ShortName,
		Color:         req.Color,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		NPWP:          req.NPWP,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.vendorRepo.CreateVendor(ctx, vendor)
	if err != nil {
		s.LogError(ctx, err, "Failed to create vendor", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Vendor created", slog.Int64("vendor_id", created.VendorID), slog.String("name", created.Name))
	return created, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID int64, req dto.UpdateVendorRequest) (*domain.Vendor, error) {
	detail, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	vendor := detail.Vendor
	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ShortName != nil {
		vendor.ShortName = *req.ShortName
	}
	if req.Color != nil {
		vendor.Color = *req.Color
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.NPWP != nil {
		vendor.NPWP = *req.NPWP
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	vendor.UpdatedAt = time.Now()

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.Int64("vendor_id", vendorID))
		return nil, err
	}

	return &vendor, nil
}

// DeleteVendor removes a vendor without transactions. A vendor that is still
// referenced by transactions is deactivated instead, so history keeps its
// joins intact.
func (s *vendorService) DeleteVendor(ctx context.Context, vendorID int64) (bool, error) {
	exists, err := s.vendorRepo.VendorExists(ctx, vendorID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, apperrors.ErrNotFound
	}

	count, err := s.vendorRepo.CountTransactionsByVendor(ctx, vendorID)
	if err != nil {
		return false, err
	}

	if count > 0 {
		if err := s.vendorRepo.DeactivateVendor(ctx, vendorID); err != nil {
			s.LogError(ctx, err, "Failed to deactivate vendor", slog.Int64("vendor_id", vendorID))
			return false, err
		}
		s.LogInfo(ctx, "Vendor deactivated", slog.Int64("vendor_id", vendorID), slog.Int64("transaction_count", count))
		return true, nil
	}

	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		s.LogError(ctx, err, "Failed to delete vendor", slog.Int64("vendor_id", vendorID))
		return false, err
	}
	s.LogInfo(ctx, "Vendor deleted", slog.Int64("vendor_id", vendorID))
	return false, nil
}
