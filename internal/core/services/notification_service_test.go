package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetYearBudgetTotal(ctx context.Context, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetPaidTotal(ctx context.Context, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetPendingBucket(ctx context.Context, year int) (domain.StatusBucket, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.StatusBucket), args.Error(1)
}

func (m *MockReportingRepository) GetOverdueBucket(ctx context.Context, asOf time.Time) (domain.StatusBucket, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(domain.StatusBucket), args.Error(1)
}

func (m *MockReportingRepository) GetDueSoonBucket(ctx context.Context, from, to time.Time) (domain.StatusBucket, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(domain.StatusBucket), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyPeriodTotals, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) GetVendorDistribution(ctx context.Context, year int) ([]domain.VendorDistributionRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorDistributionRow), args.Error(1)
}

func (m *MockReportingRepository) GetVendorBudgetActual(ctx context.Context, year int) ([]domain.VendorBudgetActualRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorBudgetActualRow), args.Error(1)
}

func (m *MockReportingRepository) GetVendorBudgetUsage(ctx context.Context, year int) ([]domain.VendorBudgetUsage, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorBudgetUsage), args.Error(1)
}

// MockSettingReader is a mock type for the SettingReaderSvc interface
type MockSettingReader struct {
	mock.Mock
}

func (m *MockSettingReader) ListSettings(ctx context.Context) (map[string]dto.SettingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]dto.SettingEntry), args.Error(1)
}

func (m *MockSettingReader) GetSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingReader) GetReminderDays(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Test Suite Setup ---

type NotificationServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockReportingRepo *MockReportingRepository
	mockSettings      *MockSettingReader
	service           portssvc.NotificationSvc
	fixedNow          time.Time
	today             time.Time
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockSettings = new(MockSettingReader)
	suite.fixedNow = time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
	suite.today = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewNotificationService(
		suite.mockTxnRepo,
		suite.mockReportingRepo,
		suite.mockSettings,
		services.WithNotificationClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *NotificationServiceTestSuite) expectEmptyDerivation() {
	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).Return([]domain.VendorBudgetUsage{}, nil).Once()
}

func overdueTxn(id int64, shortName, invoiceNo string, dueDate time.Time) domain.TransactionWithRefs {
	return domain.TransactionWithRefs{
		Transaction: domain.Transaction{
			TransactionID: id,
			InvoiceNo:     invoiceNo,
			Status:        domain.StatusPending,
			DueDate:       dueDate,
		},
		VendorShortName: shortName,
	}
}

// --- Test Cases ---

func (suite *NotificationServiceTestSuite) TestListNotifications_Empty() {
	suite.expectEmptyDerivation()

	notifications, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(notifications)
	suite.Empty(notifications)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_Overdue() {
	dueDate := suite.today.AddDate(0, 0, -3)

	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{overdueTxn(11, "TELKOM", "INV-001", dueDate)}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).
		Return([]domain.VendorBudgetUsage{}, nil).Once()

	notifications, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	n := notifications[0]
	suite.Equal("overdue-11", n.ID)
	suite.Equal(domain.NotificationOverdue, n.Type)
	suite.Equal(domain.SeverityError, n.Severity)
	suite.Equal("Tagihan Jatuh Tempo", n.Title)
	suite.Equal("TELKOM: INV-001 jatuh tempo 3 hari yang lalu", n.Message)
	suite.Equal(dueDate, n.CreatedAt)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_DueSoon() {
	dueDate := suite.today.AddDate(0, 0, 2)

	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).
		Return([]domain.TransactionWithRefs{overdueTxn(21, "LINTAS", "INV-055", dueDate)}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).
		Return([]domain.VendorBudgetUsage{}, nil).Once()

	notifications, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	n := notifications[0]
	suite.Equal("due-soon-21", n.ID)
	suite.Equal(domain.NotificationDueSoon, n.Type)
	suite.Equal(domain.SeverityWarning, n.Severity)
	suite.Equal("Tagihan Akan Jatuh Tempo", n.Title)
	suite.Equal("LINTAS: INV-055 jatuh tempo dalam 2 hari", n.Message)
	suite.Equal(suite.fixedNow, n.CreatedAt)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_ReminderWindowFromSetting() {
	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(14, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 14)).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).
		Return([]domain.VendorBudgetUsage{}, nil).Once()

	_, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_BudgetThresholds() {
	usage := []domain.VendorBudgetUsage{
		{VendorID: 1, ShortName: "OK", Budget: decimal.NewFromInt(1000), Actual: decimal.NewFromInt(500)},
		{VendorID: 2, ShortName: "WARN", Budget: decimal.NewFromInt(1000), Actual: decimal.NewFromInt(850)},
		{VendorID: 3, ShortName: "OVER", Budget: decimal.NewFromInt(1000), Actual: decimal.NewFromInt(1200)},
	}

	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).
		Return([]domain.TransactionWithRefs{}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).Return(usage, nil).Once()

	notifications, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(notifications, 2)

	// Severity error sorts before warning.
	over := notifications[0]
	suite.Equal("budget-3", over.ID)
	suite.Equal(domain.NotificationOverBudget, over.Type)
	suite.Equal(domain.SeverityError, over.Severity)
	suite.Equal("Anggaran Terlampaui", over.Title)
	suite.Equal("OVER: Realisasi 120% dari anggaran", over.Message)

	warn := notifications[1]
	suite.Equal("budget-2", warn.ID)
	suite.Equal(domain.NotificationBudgetWarning, warn.Type)
	suite.Equal(domain.SeverityWarning, warn.Severity)
	suite.Equal("Peringatan Anggaran", warn.Title)
	suite.Equal("WARN: Realisasi 85% dari anggaran", warn.Message)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_SortsBySeverityThenNewest() {
	older := suite.today.AddDate(0, 0, -10)
	newer := suite.today.AddDate(0, 0, -1)

	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{
			overdueTxn(1, "A", "INV-A", older),
			overdueTxn(2, "B", "INV-B", newer),
		}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).
		Return([]domain.TransactionWithRefs{overdueTxn(3, "C", "INV-C", suite.today.AddDate(0, 0, 1))}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).
		Return([]domain.VendorBudgetUsage{}, nil).Once()

	notifications, err := suite.service.ListNotifications(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(notifications, 3)
	suite.Equal("overdue-2", notifications[0].ID) // newest error first
	suite.Equal("overdue-1", notifications[1].ID)
	suite.Equal("due-soon-3", notifications[2].ID) // warnings after errors
}

func (suite *NotificationServiceTestSuite) TestGetCounts_MatchesDerivation() {
	usage := []domain.VendorBudgetUsage{
		{VendorID: 2, ShortName: "WARN", Budget: decimal.NewFromInt(100), Actual: decimal.NewFromInt(90)},
	}

	suite.mockSettings.On("GetReminderDays", mock.Anything).Return(7, nil).Once()
	suite.mockTxnRepo.On("FindOverdueTransactions", mock.Anything, suite.today).
		Return([]domain.TransactionWithRefs{overdueTxn(1, "A", "INV-A", suite.today.AddDate(0, 0, -1))}, nil).Once()
	suite.mockTxnRepo.On("FindDueSoonTransactions", mock.Anything, suite.today, suite.today.AddDate(0, 0, 7)).
		Return([]domain.TransactionWithRefs{
			overdueTxn(2, "B", "INV-B", suite.today.AddDate(0, 0, 1)),
			overdueTxn(3, "C", "INV-C", suite.today.AddDate(0, 0, 2)),
		}, nil).Once()
	suite.mockReportingRepo.On("GetVendorBudgetUsage", mock.Anything, 2025).Return(usage, nil).Once()

	counts, err := suite.service.GetCounts(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, counts.Overdue)
	suite.Equal(2, counts.DueSoon)
	suite.Equal(1, counts.OverBudget)
	suite.Equal(4, counts.Total)
}

// --- Run Test Suite ---

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
