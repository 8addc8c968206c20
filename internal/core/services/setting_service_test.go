package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockSettingRepository is a mock type for the SettingRepositoryFacade interface
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, key, value string, description *string) error {
	args := m.Called(ctx, key, value, description)
	return args.Error(0)
}

func (m *MockSettingRepository) UpsertSettings(ctx context.Context, values map[string]string) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

type SettingServiceTestSuite struct {
	suite.Suite
	mockSettingRepo *MockSettingRepository
	service         portssvc.SettingSvcFacade
}

func (suite *SettingServiceTestSuite) SetupTest() {
	suite.mockSettingRepo = new(MockSettingRepository)
	suite.service = services.NewSettingService(suite.mockSettingRepo)
}

func (suite *SettingServiceTestSuite) TestListSettings_KeysFullEntries() {
	ctx := context.Background()
	updatedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []domain.Setting{
		{Key: "company_name", Value: "Bank SulutGo", Description: "Nama perusahaan", UpdatedAt: updatedAt},
		{Key: "ppn_rate", Value: "0.11"},
	}

	suite.mockSettingRepo.On("ListSettings", ctx).Return(rows, nil).Once()

	entries, err := suite.service.ListSettings(ctx)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Equal(dto.SettingEntry{
		Value:       "Bank SulutGo",
		Description: "Nama perusahaan",
		UpdatedAt:   updatedAt,
	}, entries["company_name"])
	suite.Equal("0.11", entries["ppn_rate"].Value)
}

func (suite *SettingServiceTestSuite) TestGetReminderDays_FromSetting() {
	ctx := context.Background()

	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingReminderDaysBefore).
		Return(&domain.Setting{Key: domain.SettingReminderDaysBefore, Value: "14"}, nil).Once()

	days, err := suite.service.GetReminderDays(ctx)

	suite.Require().NoError(err)
	suite.Equal(14, days)
}

func (suite *SettingServiceTestSuite) TestGetReminderDays_MissingUsesDefault() {
	ctx := context.Background()

	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingReminderDaysBefore).
		Return(nil, apperrors.ErrNotFound).Once()

	days, err := suite.service.GetReminderDays(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultReminderDays, days)
}

func (suite *SettingServiceTestSuite) TestGetReminderDays_UnparsableUsesDefault() {
	ctx := context.Background()

	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingReminderDaysBefore).
		Return(&domain.Setting{Key: domain.SettingReminderDaysBefore, Value: "abc"}, nil).Once()

	days, err := suite.service.GetReminderDays(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultReminderDays, days)
}

func (suite *SettingServiceTestSuite) TestGetReminderDays_NegativeUsesDefault() {
	ctx := context.Background()

	suite.mockSettingRepo.On("FindSettingByKey", ctx, domain.SettingReminderDaysBefore).
		Return(&domain.Setting{Key: domain.SettingReminderDaysBefore, Value: "-3"}, nil).Once()

	days, err := suite.service.GetReminderDays(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultReminderDays, days)
}

func (suite *SettingServiceTestSuite) TestUpsertSetting_RoundTrips() {
	ctx := context.Background()
	desc := "Nama perusahaan"
	req := dto.UpsertSettingRequest{Value: "Bank SulutGo", Description: &desc}

	suite.mockSettingRepo.On("UpsertSetting", ctx, "company_name", "Bank SulutGo", &desc).Return(nil).Once()
	suite.mockSettingRepo.On("FindSettingByKey", ctx, "company_name").
		Return(&domain.Setting{Key: "company_name", Value: "Bank SulutGo", Description: desc}, nil).Once()

	setting, err := suite.service.UpsertSetting(ctx, "company_name", req)

	suite.Require().NoError(err)
	suite.Equal("Bank SulutGo", setting.Value)
	suite.mockSettingRepo.AssertExpectations(suite.T())
}

func (suite *SettingServiceTestSuite) TestUpsertSetting_EmptyKey() {
	ctx := context.Background()

	_, err := suite.service.UpsertSetting(ctx, "", dto.UpsertSettingRequest{Value: "x"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingRepo.AssertNotCalled(suite.T(), "UpsertSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettingServiceTestSuite) TestUpsertSettings_EmptyBatch() {
	ctx := context.Background()

	err := suite.service.UpsertSettings(ctx, map[string]string{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingServiceTestSuite) TestUpsertSettings_PassesBatchThrough() {
	ctx := context.Background()
	values := map[string]string{"ppn_rate": "0.12", "reminder_days_before": "10"}

	suite.mockSettingRepo.On("UpsertSettings", ctx, values).Return(nil).Once()

	err := suite.service.UpsertSettings(ctx, values)

	suite.Require().NoError(err)
	suite.mockSettingRepo.AssertExpectations(suite.T())
}

func TestSettingService(t *testing.T) {
	suite.Run(t, new(SettingServiceTestSuite))
}
