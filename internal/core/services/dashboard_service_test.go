package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockTxnRepo       *MockTransactionRepository
	service           portssvc.DashboardSvc
	today             time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.today = time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)
	fixedNow := time.Date(2025, time.April, 20, 9, 15, 0, 0, time.UTC)
	suite.service = services.NewDashboardService(
		suite.mockReportingRepo,
		suite.mockTxnRepo,
		services.WithDashboardClock(func() time.Time { return fixedNow }),
	)
}

func (suite *DashboardServiceTestSuite) TestGetSummary() {
	ctx := context.Background()
	budget := decimal.NewFromInt(120000)
	paid := decimal.NewFromInt(30000)

	suite.mockReportingRepo.On("GetYearBudgetTotal", ctx, 2025).Return(budget, nil).Once()
	suite.mockReportingRepo.On("GetPaidTotal", ctx, 2025).Return(paid, nil).Once()
	suite.mockReportingRepo.On("GetPendingBucket", ctx, 2025).
		Return(domain.StatusBucket{Total: decimal.NewFromInt(5000), Count: 2}, nil).Once()
	suite.mockReportingRepo.On("GetOverdueBucket", ctx, suite.today).
		Return(domain.StatusBucket{Total: decimal.NewFromInt(1000), Count: 1}, nil).Once()
	suite.mockReportingRepo.On("GetDueSoonBucket", ctx, suite.today, suite.today.AddDate(0, 0, 7)).
		Return(domain.StatusBucket{Total: decimal.NewFromInt(2000), Count: 3}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, 2025)

	suite.Require().NoError(err)
	suite.Equal(2025, summary.Year)
	suite.True(summary.Remaining.Equal(decimal.NewFromInt(90000)))
	suite.InDelta(25.0, summary.UtilizationPercent, 0.0001)
	suite.Equal(int64(2), summary.Pending.Count)
	suite.Equal(int64(1), summary.Overdue.Count)
	suite.Equal(int64(3), summary.DueSoon.Count)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetSummary_ZeroBudget() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetYearBudgetTotal", ctx, 2025).Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("GetPaidTotal", ctx, 2025).Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("GetPendingBucket", ctx, 2025).Return(domain.StatusBucket{Total: decimal.Zero}, nil).Once()
	suite.mockReportingRepo.On("GetOverdueBucket", ctx, suite.today).Return(domain.StatusBucket{Total: decimal.Zero}, nil).Once()
	suite.mockReportingRepo.On("GetDueSoonBucket", ctx, suite.today, suite.today.AddDate(0, 0, 7)).
		Return(domain.StatusBucket{Total: decimal.Zero}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, 2025)

	suite.Require().NoError(err)
	suite.Zero(summary.UtilizationPercent)
}

func (suite *DashboardServiceTestSuite) TestGetMonthlyTrend_AlwaysTwelveBuckets() {
	ctx := context.Background()
	rows := []domain.MonthlyPeriodTotals{
		{Period: "2025-03", Paid: decimal.NewFromInt(700), Pending: decimal.NewFromInt(300), Total: decimal.NewFromInt(1000), TransactionCount: 4},
	}

	suite.mockReportingRepo.On("GetMonthlyTotals", ctx, 2025).Return(rows, nil).Once()
	suite.mockReportingRepo.On("GetYearBudgetTotal", ctx, 2025).Return(decimal.NewFromInt(24000), nil).Once()

	trend, err := suite.service.GetMonthlyTrend(ctx, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(trend.Months, 12)
	suite.Equal("2025-01", trend.Months[0].Period)
	suite.Equal("Jan", trend.Months[0].MonthName)
	suite.True(trend.Months[0].Total.IsZero())

	march := trend.Months[2]
	suite.Equal("2025-03", march.Period)
	suite.Equal("Mar", march.MonthName)
	suite.True(march.Total.Equal(decimal.NewFromInt(1000)))
	suite.Equal(int64(4), march.TransactionCount)

	suite.Equal("Des", trend.Months[11].MonthName)
	suite.True(trend.MonthlyBudget.Equal(decimal.NewFromInt(2000)))
}

func (suite *DashboardServiceTestSuite) TestGetMonthlyTrend_EmptyYear() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetMonthlyTotals", ctx, 2030).Return([]domain.MonthlyPeriodTotals{}, nil).Once()
	suite.mockReportingRepo.On("GetYearBudgetTotal", ctx, 2030).Return(decimal.Zero, nil).Once()

	trend, err := suite.service.GetMonthlyTrend(ctx, 2030)

	suite.Require().NoError(err)
	suite.Require().Len(trend.Months, 12)
	for _, bucket := range trend.Months {
		suite.True(bucket.Paid.IsZero())
		suite.True(bucket.Pending.IsZero())
		suite.Zero(bucket.TransactionCount)
	}
	suite.True(trend.MonthlyBudget.IsZero())
}

func (suite *DashboardServiceTestSuite) TestGetVendorDistribution_Percentages() {
	ctx := context.Background()
	rows := []domain.VendorDistributionRow{
		{VendorID: 1, VendorName: "Alpha", Total: decimal.NewFromInt(750)},
		{VendorID: 2, VendorName: "Beta", Total: decimal.NewFromInt(250)},
	}

	suite.mockReportingRepo.On("GetVendorDistribution", ctx, 2025).Return(rows, nil).Once()

	dist, err := suite.service.GetVendorDistribution(ctx, 2025)

	suite.Require().NoError(err)
	suite.True(dist.GrandTotal.Equal(decimal.NewFromInt(1000)))
	suite.InDelta(75.0, dist.Distribution[0].Percentage, 0.0001)
	suite.InDelta(25.0, dist.Distribution[1].Percentage, 0.0001)
}

func (suite *DashboardServiceTestSuite) TestGetVendorDistribution_Empty() {
	ctx := context.Background()

	suite.mockReportingRepo.On("GetVendorDistribution", ctx, 2025).Return(nil, nil).Once()

	dist, err := suite.service.GetVendorDistribution(ctx, 2025)

	suite.Require().NoError(err)
	suite.NotNil(dist.Distribution)
	suite.Empty(dist.Distribution)
	suite.True(dist.GrandTotal.IsZero())
}

func (suite *DashboardServiceTestSuite) TestGetBudgetVsActual() {
	ctx := context.Background()
	rows := []domain.VendorBudgetActualRow{
		{VendorID: 1, Budget: decimal.NewFromInt(1000), Actual: decimal.NewFromInt(1200)},
		{VendorID: 2, Budget: decimal.NewFromInt(1000), Actual: decimal.NewFromInt(400)},
	}

	suite.mockReportingRepo.On("GetVendorBudgetActual", ctx, 2025).Return(rows, nil).Once()

	result, err := suite.service.GetBudgetVsActual(ctx, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].Remaining.Equal(decimal.NewFromInt(-200)))
	suite.InDelta(120.0, result[0].UtilizationPercent, 0.0001)
	suite.True(result[0].IsOverBudget)

	suite.True(result[1].Remaining.Equal(decimal.NewFromInt(600)))
	suite.InDelta(40.0, result[1].UtilizationPercent, 0.0001)
	suite.False(result[1].IsOverBudget)
}

func (suite *DashboardServiceTestSuite) TestListRecentTransactions_DefaultLimit() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, 10).
		Return([]domain.TransactionWithRefs{}, nil).Once()

	txns, err := suite.service.ListRecentTransactions(ctx, 0)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
