package services_test

import (
	"context"
	"testing"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, year *int) ([]domain.BudgetWithRefs, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetWithRefs), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) GetBudgetComparison(ctx context.Context, year int) ([]domain.BudgetComparisonRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetComparisonRow), args.Error(1)
}

func (m *MockBudgetRepository) ListYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, bool, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Bool(1), args.Error(2)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetRepository
	mockVendorRepo  *MockVendorRepository
	mockServiceRepo *MockServiceRepository
	service         portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockVendorRepo, suite.mockServiceRepo)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_Created() {
	ctx := context.Background()
	vendorID := int64(4)
	req := dto.UpsertBudgetRequest{
		Year:         2025,
		VendorID:     &vendorID,
		BudgetAmount: decimal.NewFromInt(120000000),
		Description:  "Anggaran jaringan",
	}

	suite.mockVendorRepo.On("VendorExists", ctx, vendorID).Return(true, nil).Once()
	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Year == 2025 && b.VendorID != nil && *b.VendorID == vendorID && b.ServiceID == nil &&
			b.BudgetAmount.Equal(req.BudgetAmount)
	})).Return(&domain.Budget{BudgetID: 9, Year: 2025, VendorID: &vendorID, BudgetAmount: req.BudgetAmount}, true, nil).Once()

	saved, created, err := suite.service.UpsertBudget(ctx, req)

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(int64(9), saved.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_OverwriteReportsNotCreated() {
	ctx := context.Background()
	req := dto.UpsertBudgetRequest{Year: 2025, BudgetAmount: decimal.NewFromInt(5000)}

	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Return(&domain.Budget{BudgetID: 2, Year: 2025, BudgetAmount: req.BudgetAmount}, false, nil).Once()

	_, created, err := suite.service.UpsertBudget(ctx, req)

	suite.Require().NoError(err)
	suite.False(created)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_NegativeAmount() {
	ctx := context.Background()
	req := dto.UpsertBudgetRequest{Year: 2025, BudgetAmount: decimal.NewFromInt(-1)}

	_, _, err := suite.service.UpsertBudget(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_ServiceWithoutVendor() {
	ctx := context.Background()
	serviceID := int64(7)
	req := dto.UpsertBudgetRequest{Year: 2025, ServiceID: &serviceID, BudgetAmount: decimal.NewFromInt(100)}

	_, _, err := suite.service.UpsertBudget(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestUpsertBudget_ServiceVendorMismatch() {
	ctx := context.Background()
	vendorID, serviceID := int64(4), int64(7)
	req := dto.UpsertBudgetRequest{Year: 2025, VendorID: &vendorID, ServiceID: &serviceID, BudgetAmount: decimal.NewFromInt(100)}

	suite.mockVendorRepo.On("VendorExists", ctx, vendorID).Return(true, nil).Once()
	suite.mockServiceRepo.On("ServiceBelongsToVendor", ctx, serviceID, vendorID).Return(false, nil).Once()

	_, _, err := suite.service.UpsertBudget(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestGetComparison_AnnotatesRowsAndSummary() {
	ctx := context.Background()
	// Rows arrive ordered by vendor name; the larger budget comes second.
	rows := []domain.BudgetComparisonRow{
		{BudgetID: 1, Year: 2025, VendorName: "PT Indosat", BudgetAmount: decimal.NewFromInt(1000), ActualPaid: decimal.NewFromInt(900), ActualPending: decimal.NewFromInt(300), ActualTotal: decimal.NewFromInt(1200)},
		{BudgetID: 2, Year: 2025, VendorName: "PT Telkom", BudgetAmount: decimal.NewFromInt(2000), ActualPaid: decimal.NewFromInt(600), ActualPending: decimal.NewFromInt(200), ActualTotal: decimal.NewFromInt(800)},
	}

	suite.mockBudgetRepo.On("GetBudgetComparison", ctx, 2025).Return(rows, nil).Once()

	result, err := suite.service.GetComparison(ctx, 2025)

	suite.Require().NoError(err)
	suite.Equal(2025, result.Year)
	suite.Require().Len(result.Comparison, 2)

	// Vendor-name order from the repository is preserved, not re-sorted by amount.
	suite.Equal("PT Indosat", result.Comparison[0].VendorName)
	suite.Equal("PT Telkom", result.Comparison[1].VendorName)

	suite.True(result.Comparison[0].Remaining.Equal(decimal.NewFromInt(-200)))
	suite.InDelta(120.0, result.Comparison[0].UtilizationPercent, 0.001)
	suite.True(result.Comparison[1].Remaining.Equal(decimal.NewFromInt(1200)))
	suite.InDelta(40.0, result.Comparison[1].UtilizationPercent, 0.001)

	suite.True(result.Summary.TotalBudget.Equal(decimal.NewFromInt(3000)))
	suite.True(result.Summary.TotalActual.Equal(decimal.NewFromInt(2000)))
	suite.True(result.Summary.Remaining.Equal(decimal.NewFromInt(1000)))
	// 2000/3000, not the average of 120% and 40%.
	suite.InDelta(66.666, result.Summary.UtilizationPercent, 0.01)
}

func (suite *BudgetServiceTestSuite) TestGetComparison_EmptyYear() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("GetBudgetComparison", ctx, 2031).Return(nil, nil).Once()

	result, err := suite.service.GetComparison(ctx, 2031)

	suite.Require().NoError(err)
	suite.NotNil(result.Comparison)
	suite.Empty(result.Comparison)
	suite.True(result.Summary.TotalBudget.IsZero())
	suite.Zero(result.Summary.UtilizationPercent)
}

func (suite *BudgetServiceTestSuite) TestGetYearSummary_TotalsRows() {
	ctx := context.Background()
	year := 2025
	budgets := []domain.BudgetWithRefs{
		{Budget: domain.Budget{BudgetID: 1, Year: year, BudgetAmount: decimal.NewFromInt(250)}},
		{Budget: domain.Budget{BudgetID: 2, Year: year, BudgetAmount: decimal.NewFromInt(750)}},
	}

	suite.mockBudgetRepo.On("ListBudgets", ctx, &year).Return(budgets, nil).Once()

	result, err := suite.service.GetYearSummary(ctx, year)

	suite.Require().NoError(err)
	suite.Equal(year, result.Year)
	suite.Len(result.Budgets, 2)
	suite.True(result.TotalBudget.Equal(decimal.NewFromInt(1000)))
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_NotFound() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateBudget(ctx, 99, dto.UpdateBudgetRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_Success() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, int64(3)).Return(&domain.Budget{BudgetID: 3}, nil).Once()
	suite.mockBudgetRepo.On("DeleteBudget", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteBudget(ctx, 3)

	suite.Require().NoError(err)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
