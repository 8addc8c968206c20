package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
	"github.com/bsgti/vendor_budget_app/internal/handlers"
	"github.com/bsgti/vendor_budget_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, query dto.ListTransactionsQuery) (*dto.PaginatedTransactionsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.TransactionWithRefs, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithRefs), args.Error(1)
}
func (m *MockTransactionService) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithRefs, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionWithRefs), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionWithRefs, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithRefs), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.TransactionWithRefs, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithRefs), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockTransactionService) SetStatus(ctx context.Context, transactionID int64, req dto.UpdateStatusRequest) (*domain.TransactionWithRefs, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithRefs), args.Error(1)
}
func (m *MockTransactionService) BulkSetStatus(ctx context.Context, req dto.BulkStatusRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionService) SweepOverdue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockTxnService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()
	suite.router = gin.New()
	suite.mockTxnService = new(MockTransactionService)

	// Only the transaction routes receive traffic in these tests.
	container := &portssvc.ServiceContainer{Transaction: suite.mockTxnService}
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesQueryThrough() {
	expected := &dto.PaginatedTransactionsResponse{
		Data: []domain.TransactionWithRefs{
			{Transaction: domain.Transaction{TransactionID: 1, InvoiceNo: "INV-001", Status: domain.StatusPending}},
		},
		Pagination: dto.PaginationInfo{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}

	suite.mockTxnService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(q dto.ListTransactionsQuery) bool {
		return q.Page == 2 && q.Limit == 10 && q.Status != nil && *q.Status == "pending"
	})).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/transactions?page=2&limit=10&status=pending", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.PaginatedTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Data, 1)
	suite.Equal("INV-001", body.Data[0].InvoiceNo)
	suite.Equal(2, body.Pagination.TotalPages)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RejectsUnknownStatus() {
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions?status=archived", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionByID_NotFound() {
	suite.mockTxnService.On("GetTransactionByID", mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/transactions/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Transaction not found", body.Error)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionByID_BadID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "GetTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_DuplicateInvoice() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	payload := `{
		"vendor_id": 1,
		"service_id": 2,
		"invoice_no": "INV-007",
		"period": "2025-03",
		"invoice_date": "2025-03-01",
		"due_date": "2025-03-31"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)

	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Invoice number 'INV-007' already exists", body.Error)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_RejectsMalformedPeriod() {
	payload := `{
		"vendor_id": 1,
		"service_id": 2,
		"invoice_no": "INV-008",
		"period": "2025-13",
		"invoice_date": "2025-03-01",
		"due_date": "2025-03-31"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_Success() {
	updated := &domain.TransactionWithRefs{
		Transaction: domain.Transaction{TransactionID: 3, InvoiceNo: "INV-003", Status: domain.StatusPaid},
	}

	suite.mockTxnService.On("SetStatus", mock.Anything, int64(3), mock.MatchedBy(func(r dto.UpdateStatusRequest) bool {
		return r.Status == "paid" && r.PayDate != nil && *r.PayDate == "2025-03-20"
	})).Return(updated, nil).Once()

	payload := `{"status": "paid", "pay_date": "2025-03-20"}`
	req, _ := http.NewRequest(http.MethodPatch, "/api/transactions/3/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestBulkUpdateStatus_ReportsCount() {
	suite.mockTxnService.On("BulkSetStatus", mock.Anything, mock.MatchedBy(func(r dto.BulkStatusRequest) bool {
		return len(r.IDs) == 3 && r.Status == "approved"
	})).Return(int64(3), nil).Once()

	payload := `{"ids": [1, 2, 3], "status": "approved"}`
	req, _ := http.NewRequest(http.MethodPatch, "/api/transactions/bulk/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(3), body.Updated)
	suite.Equal("3 transactions updated", body.Message)
}

func (suite *TransactionHandlerTestSuite) TestMarkOverdue_ReportsCount() {
	suite.mockTxnService.On("SweepOverdue", mock.Anything).Return(int64(2), nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/transactions/mark-overdue", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(2), body.Updated)
	suite.Equal("2 transactions marked as overdue", body.Message)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, int64(9)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/transactions/9", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Transaction deleted", body.Message)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
