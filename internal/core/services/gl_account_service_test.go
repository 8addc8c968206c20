package services_test

import (
	"context"
	"testing"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/core/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockGLAccountRepository is a mock type for the GLAccountRepositoryFacade interface
type MockGLAccountRepository struct {
	mock.Mock
}

func (m *MockGLAccountRepository) ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GLAccount), args.Error(1)
}

func (m *MockGLAccountRepository) CreateGLAccount(ctx context.Context, account domain.GLAccount) (*domain.GLAccount, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GLAccount), args.Error(1)
}

type GLAccountServiceTestSuite struct {
	suite.Suite
	mockGLRepo *MockGLAccountRepository
	service    portssvc.GLAccountSvcFacade
}

func (suite *GLAccountServiceTestSuite) SetupTest() {
	suite.mockGLRepo = new(MockGLAccountRepository)
	suite.service = services.NewGLAccountService(suite.mockGLRepo)
}

func (suite *GLAccountServiceTestSuite) TestListGLAccounts_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockGLRepo.On("ListGLAccounts", ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListGLAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *GLAccountServiceTestSuite) TestCreateGLAccount_Success() {
	ctx := context.Background()
	req := dto.CreateGLAccountRequest{Code: "5110104", Name: "Biaya Lisensi Software", Category: "Biaya Operasional"}

	suite.mockGLRepo.On("CreateGLAccount", ctx, domain.GLAccount{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
	}).Return(&domain.GLAccount{GLAccountID: 6, Code: req.Code, Name: req.Name, Category: req.Category}, nil).Once()

	created, err := suite.service.CreateGLAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(6), created.GLAccountID)
	suite.mockGLRepo.AssertExpectations(suite.T())
}

func (suite *GLAccountServiceTestSuite) TestCreateGLAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateGLAccountRequest{Code: "5110101", Name: "Biaya Pemeliharaan Software"}

	suite.mockGLRepo.On("CreateGLAccount", ctx, mock.AnythingOfType("domain.GLAccount")).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateGLAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestGLAccountService(t *testing.T) {
	suite.Run(t, new(GLAccountServiceTestSuite))
}
