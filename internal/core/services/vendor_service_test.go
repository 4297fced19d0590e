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
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// MockVendorRepository is a mock type for the VendorRepositoryFacade interface
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context, includeInactive bool) ([]domain.Vendor, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeactivateVendor(ctx context.Context, vendorID, updatedByUserID string) error {
	args := m.Called(ctx, vendorID, updatedByUserID)
	return args.Error(0)
}

// MockVendorTransactionRepository is a mock type for the
// VendorTransactionRepositoryFacade interface
type MockVendorTransactionRepository struct {
	mock.Mock
}

func (m *MockVendorTransactionRepository) ListTransactionsForLedger(ctx context.Context, vendorID, branchName string) ([]domain.VendorTransaction, error) {
	args := m.Called(ctx, vendorID, branchName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorTransaction), args.Error(1)
}

func (m *MockVendorTransactionRepository) ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string) ([]domain.VendorTransaction, *string, error) {
	args := m.Called(ctx, vendorID, branchName, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.VendorTransaction), next, args.Error(2)
}

func (m *MockVendorTransactionRepository) SaveVendorTransaction(ctx context.Context, txn domain.VendorTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockVendorTransactionRepository) DeleteVendorTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockBranchRepository is a mock type for the BranchRepositoryFacade interface
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) FindBranchByName(ctx context.Context, name string) (*domain.Branch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) DeactivateBranch(ctx context.Context, branchID, updatedByUserID string) error {
	args := m.Called(ctx, branchID, updatedByUserID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type VendorServiceTestSuite struct {
	suite.Suite
	mockVendors    *MockVendorRepository
	mockTxns       *MockVendorTransactionRepository
	mockBranches   *MockBranchRepository
	mockUserReader *MockUserReaderSvc
	mockEvents     *MockEventPublisher
	service        portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockVendors = new(MockVendorRepository)
	suite.mockTxns = new(MockVendorTransactionRepository)
	suite.mockBranches = new(MockBranchRepository)
	suite.mockUserReader = new(MockUserReaderSvc)
	suite.mockEvents = new(MockEventPublisher)
	suite.service = services.NewVendorService(
		suite.mockVendors,
		suite.mockTxns,
		suite.mockBranches,
		services.WithVendorUserReader(suite.mockUserReader),
		services.WithVendorEventPublisher(suite.mockEvents),
	)
}

func (suite *VendorServiceTestSuite) expectUser(userID string, role domain.UserRole, branchName string) {
	suite.mockUserReader.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: role, BranchName: branchName}, nil).Once()
}

// --- Test Cases ---

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	req := dto.CreateVendorRequest{Name: "Acme Traders", Phone: "9812345678"}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("SaveVendor", ctx, mock.AnythingOfType("domain.Vendor")).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.NotEmpty(vendor.VendorID)
	suite.Equal(req.Name, vendor.Name)
	suite.Equal(req.Phone, vendor.Phone)
	suite.True(vendor.IsActive)
	suite.Equal(adminID, vendor.CreatedBy)
	suite.WithinDuration(time.Now(), vendor.CreatedAt, time.Second)

	suite.mockVendors.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_NonAdminForbidden() {
	ctx := context.Background()
	branchUserID := uuid.NewString()

	suite.expectUser(branchUserID, domain.RoleBranch, "Downtown")

	vendor, err := suite.service.CreateVendor(ctx, dto.CreateVendorRequest{Name: "Acme"}, branchUserID)

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockVendors.AssertNotCalled(suite.T(), "SaveVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	branchUserID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		BranchName: "Downtown",
		Amount:     decimal.NewFromInt(500),
		Comment:    "March settlement",
	}

	suite.expectUser(branchUserID, domain.RoleBranch, "Downtown")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, Name: "Acme", IsActive: true}, nil).Once()
	suite.mockBranches.On("FindBranchByName", ctx, "Downtown").
		Return(&domain.Branch{BranchID: uuid.NewString(), Name: "Downtown", IsActive: true}, nil).Once()
	suite.mockTxns.On("SaveVendorTransaction", ctx, mock.AnythingOfType("domain.VendorTransaction")).Return(nil).Once()
	suite.mockEvents.On("Publish", ctx, portssvc.EventPaymentRecorded, mock.Anything).Return(nil).Once()

	txn, err := suite.service.RecordPayment(ctx, vendorID, req, branchUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(vendorID, txn.VendorID)
	// Payments are stored positive
	suite.True(txn.Amount.Equal(decimal.NewFromInt(500)))
	suite.False(txn.IsAdjustment())

	suite.mockTxns.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		req := dto.RecordPaymentRequest{BranchName: "Downtown", Amount: amount}

		txn, err := suite.service.RecordPayment(ctx, uuid.NewString(), req, uuid.NewString())

		suite.Require().Error(err)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveVendorTransaction", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestRecordAdjustment_StoresNegatedAmount() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	req := dto.RecordAdjustmentRequest{
		BranchName: "Downtown",
		Amount:     decimal.NewFromInt(75),
		Comment:    "Damaged goods returned",
	}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: true}, nil).Once()
	suite.mockBranches.On("FindBranchByName", ctx, "Downtown").
		Return(&domain.Branch{Name: "Downtown", IsActive: true}, nil).Once()

	var saved domain.VendorTransaction
	suite.mockTxns.On("SaveVendorTransaction", ctx, mock.AnythingOfType("domain.VendorTransaction")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.VendorTransaction)
		}).Return(nil).Once()
	suite.mockEvents.On("Publish", ctx, portssvc.EventAdjustmentRecorded, mock.Anything).Return(nil).Once()

	txn, err := suite.service.RecordAdjustment(ctx, vendorID, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(-75)))
	suite.True(txn.IsAdjustment())
	suite.True(saved.Amount.IsNegative())

	suite.mockTxns.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPayment_DeactivatedVendor() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	req := dto.RecordPaymentRequest{BranchName: "Downtown", Amount: decimal.NewFromInt(100)}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: false}, nil).Once()

	txn, err := suite.service.RecordPayment(ctx, vendorID, req, adminID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveVendorTransaction", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestRecordPayment_VendorLoginForbidden() {
	ctx := context.Background()
	vendorUserID := uuid.NewString()
	req := dto.RecordPaymentRequest{BranchName: "Downtown", Amount: decimal.NewFromInt(100)}

	suite.mockUserReader.On("GetUserByID", mock.Anything, vendorUserID).
		Return(&domain.User{UserID: vendorUserID, Role: domain.RoleVendor, VendorID: uuid.NewString()}, nil).Once()

	txn, err := suite.service.RecordPayment(ctx, uuid.NewString(), req, vendorUserID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *VendorServiceTestSuite) TestRecordPayment_SaveError() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	req := dto.RecordPaymentRequest{BranchName: "Downtown", Amount: decimal.NewFromInt(100)}
	expectedErr := assert.AnError

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: true}, nil).Once()
	suite.mockBranches.On("FindBranchByName", ctx, "Downtown").
		Return(&domain.Branch{Name: "Downtown"}, nil).Once()
	suite.mockTxns.On("SaveVendorTransaction", ctx, mock.AnythingOfType("domain.VendorTransaction")).Return(expectedErr).Once()

	txn, err := suite.service.RecordPayment(ctx, vendorID, req, adminID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
	suite.mockEvents.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestListVendorTransactions_ClampsLimit() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockTxns.On("ListVendorTransactions", ctx, vendorID, "", 50, (*string)(nil)).
		Return([]domain.VendorTransaction{}, nil, nil).Once()

	_, _, err := suite.service.ListVendorTransactions(ctx, vendorID, "", 0, nil, adminID)

	suite.Require().NoError(err)
	suite.mockTxns.AssertExpectations(suite.T())
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
