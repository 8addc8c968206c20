package services_test

import (
	"context"
	"testing"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockVendorRepo  *MockVendorRepository
	mockServiceRepo *MockServiceRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewVendorService(suite.mockVendorRepo, suite.mockServiceRepo, suite.mockTxnRepo)
}

func (suite *VendorServiceTestSuite) TestCreateVendor_DefaultsToActive() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{Name: "PT Telkom Indonesia", ShortName: "TELKOM"}

	suite.mockVendorRepo.On("CreateVendor", ctx, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.IsActive && v.Name == req.Name && v.ShortName == req.ShortName &&
			!v.CreatedAt.IsZero() && v.CreatedAt.Equal(v.UpdatedAt)
	})).Return(&domain.Vendor{VendorID: 1, Name: req.Name, ShortName: req.ShortName, IsActive: true}, nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), vendor.VendorID)
	suite.True(vendor.IsActive)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestGetVendorByID_ComposesDetail() {
	ctx := context.Background()
	vendorID := int64(3)
	detail := &domain.VendorDetail{Vendor: domain.Vendor{VendorID: vendorID, Name: "PT Lintasarta"}}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(detail, nil).Once()
	suite.mockServiceRepo.On("ListServices", ctx, mock.MatchedBy(func(f portsrepo.ServiceFilter) bool {
		return f.VendorID != nil && *f.VendorID == vendorID && !f.IncludeInactive
	})).Return([]domain.ServiceWithRefs{{}}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.VendorID != nil && *f.VendorID == vendorID && f.Limit == 10 &&
			f.SortBy == "invoice_date" && f.SortDesc
	})).Return([]domain.TransactionWithRefs{{}, {}}, int64(2), nil).Once()

	result, err := suite.service.GetVendorByID(ctx, vendorID)

	suite.Require().NoError(err)
	suite.Equal("PT Lintasarta", result.Name)
	suite.Len(result.Services, 1)
	suite.Len(result.RecentTransactions, 2)
}

func (suite *VendorServiceTestSuite) TestGetVendorByID_NotFound() {
	ctx := context.Background()

	suite.mockVendorRepo.On("FindVendorByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetVendorByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_DeactivatesWhenReferenced() {
	ctx := context.Background()

	suite.mockVendorRepo.On("VendorExists", ctx, int64(5)).Return(true, nil).Once()
	suite.mockVendorRepo.On("CountTransactionsByVendor", ctx, int64(5)).Return(int64(12), nil).Once()
	suite.mockVendorRepo.On("DeactivateVendor", ctx, int64(5)).Return(nil).Once()

	deactivated, err := suite.service.DeleteVendor(ctx, 5)

	suite.Require().NoError(err)
	suite.True(deactivated)
	suite.mockVendorRepo.AssertNotCalled(suite.T(), "DeleteVendor", ctx, int64(5))
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_RemovesWhenUnreferenced() {
	ctx := context.Background()

	suite.mockVendorRepo.On("VendorExists", ctx, int64(6)).Return(true, nil).Once()
	suite.mockVendorRepo.On("CountTransactionsByVendor", ctx, int64(6)).Return(int64(0), nil).Once()
	suite.mockVendorRepo.On("DeleteVendor", ctx, int64(6)).Return(nil).Once()

	deactivated, err := suite.service.DeleteVendor(ctx, 6)

	suite.Require().NoError(err)
	suite.False(deactivated)
	suite.mockVendorRepo.AssertNotCalled(suite.T(), "DeactivateVendor", ctx, int64(6))
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_NotFound() {
	ctx := context.Background()

	suite.mockVendorRepo.On("VendorExists", ctx, int64(7)).Return(false, nil).Once()

	_, err := suite.service.DeleteVendor(ctx, 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestVendorService(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
