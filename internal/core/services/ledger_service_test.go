package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/core/services"
)

// MockPurchaseReader is a mock type for the PurchaseReader interface
type MockPurchaseReader struct {
	mock.Mock
}

func (m *MockPurchaseReader) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseReader) ListPurchasesForLedger(ctx context.Context, vendorID, branchName string) ([]domain.Purchase, error) {
	args := m.Called(ctx, vendorID, branchName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseReader) ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	args := m.Called(ctx, branchName, vendorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Purchase), args.Get(1).(*string), args.Error(2)
}

// MockVendorTransactionReader is a mock type for the VendorTransactionReader interface
type MockVendorTransactionReader struct {
	mock.Mock
}

func (m *MockVendorTransactionReader) ListTransactionsForLedger(ctx context.Context, vendorID, branchName string) ([]domain.VendorTransaction, error) {
	args := m.Called(ctx, vendorID, branchName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorTransaction), args.Error(1)
}

func (m *MockVendorTransactionReader) ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string) ([]domain.VendorTransaction, *string, error) {
	args := m.Called(ctx, vendorID, branchName, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.VendorTransaction), args.Get(1).(*string), args.Error(2)
}

// MockUserReaderSvc is a mock type for the UserReaderSvc interface
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEventPublisher is a mock type for the EventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockPurchases  *MockPurchaseReader
	mockTxns       *MockVendorTransactionReader
	mockUserReader *MockUserReaderSvc
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockPurchases = new(MockPurchaseReader)
	suite.mockTxns = new(MockVendorTransactionReader)
	suite.mockUserReader = new(MockUserReaderSvc)
	suite.service = services.NewLedgerService(
		suite.mockPurchases,
		suite.mockTxns,
		services.WithLedgerUserReader(suite.mockUserReader),
	)
}

func (suite *LedgerServiceTestSuite) expectAdmin(userID string) {
	suite.mockUserReader.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleSuperAdmin}, nil).Once()
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestVendorLedger_MergesAndSorts() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	branch := "Downtown"

	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)

	purchases := []domain.Purchase{
		{PurchaseID: "p1", VendorID: vendorID, BranchName: branch, ItemName: "Flour", Price: decimal.NewFromInt(100), CreatedAt: day1},
		{PurchaseID: "p2", VendorID: vendorID, BranchName: branch, ItemName: "Sugar", Price: decimal.NewFromInt(50), CreatedAt: day3},
	}
	transactions := []domain.VendorTransaction{
		{TransactionID: "t1", VendorID: vendorID, BranchName: branch, Amount: decimal.NewFromInt(30), CreatedAt: day2},
	}

	suite.expectAdmin(adminID)
	suite.mockPurchases.On("ListPurchasesForLedger", mock.Anything, vendorID, branch).Return(purchases, nil).Once()
	suite.mockTxns.On("ListTransactionsForLedger", mock.Anything, vendorID, branch).Return(transactions, nil).Once()

	result, err := suite.service.VendorLedger(ctx, vendorID, branch, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)

	// 100 + 50 purchased, 30 paid
	suite.True(result.Balance.Equal(decimal.NewFromInt(120)), "balance was %s", result.Balance)

	// Newest first: p2 (day3), t1 (day2), p1 (day1)
	suite.Require().Len(result.Ledger, 3)
	suite.Equal("p2", result.Ledger[0].SourceID)
	suite.Equal(domain.LedgerPurchase, result.Ledger[0].Type)
	suite.Equal("t1", result.Ledger[1].SourceID)
	suite.Equal(domain.LedgerPayment, result.Ledger[1].Type)
	suite.Equal("p1", result.Ledger[2].SourceID)

	suite.mockPurchases.AssertExpectations(suite.T())
	suite.mockTxns.AssertExpectations(suite.T())
	suite.mockUserReader.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_NegativeAmountIsAdjustment() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	branch := "Downtown"

	transactions := []domain.VendorTransaction{
		{TransactionID: "t1", VendorID: vendorID, BranchName: branch, Amount: decimal.NewFromInt(-25), CreatedAt: time.Now()},
	}

	suite.expectAdmin(adminID)
	suite.mockPurchases.On("ListPurchasesForLedger", mock.Anything, vendorID, branch).Return([]domain.Purchase{}, nil).Once()
	suite.mockTxns.On("ListTransactionsForLedger", mock.Anything, vendorID, branch).Return(transactions, nil).Once()

	result, err := suite.service.VendorLedger(ctx, vendorID, branch, adminID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Ledger, 1)
	suite.Equal(domain.LedgerAdjustment, result.Ledger[0].Type)
	// The displayed value is the unsigned magnitude
	suite.True(result.Ledger[0].Value.Equal(decimal.NewFromInt(25)))
	// Subtracting the negative amount raises the balance
	suite.True(result.Balance.Equal(decimal.NewFromInt(25)), "balance was %s", result.Balance)
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_EmptyStreams() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()

	suite.expectAdmin(adminID)
	suite.mockPurchases.On("ListPurchasesForLedger", mock.Anything, vendorID, "B1").Return([]domain.Purchase{}, nil).Once()
	suite.mockTxns.On("ListTransactionsForLedger", mock.Anything, vendorID, "B1").Return([]domain.VendorTransaction{}, nil).Once()

	result, err := suite.service.VendorLedger(ctx, vendorID, "B1", adminID)

	suite.Require().NoError(err)
	suite.True(result.Balance.IsZero())
	suite.Empty(result.Ledger)
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_PurchaseFetchError() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	expectedErr := assert.AnError

	suite.expectAdmin(adminID)
	suite.mockPurchases.On("ListPurchasesForLedger", mock.Anything, vendorID, "B1").Return(nil, expectedErr).Once()
	suite.mockTxns.On("ListTransactionsForLedger", mock.Anything, vendorID, "B1").Return([]domain.VendorTransaction{}, nil).Maybe()

	result, err := suite.service.VendorLedger(ctx, vendorID, "B1", adminID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_BranchUserOtherBranchForbidden() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	branchUserID := uuid.NewString()

	suite.mockUserReader.On("GetUserByID", mock.Anything, branchUserID).
		Return(&domain.User{UserID: branchUserID, Role: domain.RoleBranch, BranchName: "Uptown"}, nil).Once()

	result, err := suite.service.VendorLedger(ctx, vendorID, "Downtown", branchUserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPurchases.AssertNotCalled(suite.T(), "ListPurchasesForLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_VendorUserOwnLedgerAllowed() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	vendorUserID := uuid.NewString()

	suite.mockUserReader.On("GetUserByID", mock.Anything, vendorUserID).
		Return(&domain.User{UserID: vendorUserID, Role: domain.RoleVendor, VendorID: vendorID}, nil).Once()
	suite.mockPurchases.On("ListPurchasesForLedger", mock.Anything, vendorID, "B1").Return([]domain.Purchase{}, nil).Once()
	suite.mockTxns.On("ListTransactionsForLedger", mock.Anything, vendorID, "B1").Return([]domain.VendorTransaction{}, nil).Once()

	result, err := suite.service.VendorLedger(ctx, vendorID, "B1", vendorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
}

func (suite *LedgerServiceTestSuite) TestVendorLedger_VendorUserOtherVendorForbidden() {
	ctx := context.Background()
	vendorUserID := uuid.NewString()

	suite.mockUserReader.On("GetUserByID", mock.Anything, vendorUserID).
		Return(&domain.User{UserID: vendorUserID, Role: domain.RoleVendor, VendorID: uuid.NewString()}, nil).Once()

	result, err := suite.service.VendorLedger(ctx, uuid.NewString(), "B1", vendorUserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
