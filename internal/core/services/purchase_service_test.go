package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/core/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesForLedger(ctx context.Context, vendorID, branchName string) ([]domain.Purchase, error) {
	args := m.Called(ctx, vendorID, branchName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	args := m.Called(ctx, branchName, vendorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Purchase), next, args.Error(2)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchases  *MockPurchaseRepository
	mockVendors    *MockVendorRepository
	mockBranches   *MockBranchRepository
	mockUserReader *MockUserReaderSvc
	mockEvents     *MockEventPublisher
	service        portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchases = new(MockPurchaseRepository)
	suite.mockVendors = new(MockVendorRepository)
	suite.mockBranches = new(MockBranchRepository)
	suite.mockUserReader = new(MockUserReaderSvc)
	suite.mockEvents = new(MockEventPublisher)
	suite.service = services.NewPurchaseService(
		suite.mockPurchases,
		suite.mockVendors,
		suite.mockBranches,
		services.WithPurchaseUserReader(suite.mockUserReader),
		services.WithPurchaseEventPublisher(suite.mockEvents),
	)
}

func (suite *PurchaseServiceTestSuite) expectUser(userID string, role domain.UserRole, branchName string) {
	suite.mockUserReader.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: role, BranchName: branchName}, nil).Once()
}

// --- Test Cases ---

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	branchUserID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		VendorID:   vendorID,
		BranchName: "Downtown",
		ItemName:   "Cooking oil",
		Price:      decimal.NewFromInt(1200),
		Quantity:   "4 cans",
	}

	suite.expectUser(branchUserID, domain.RoleBranch, "Downtown")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: true}, nil).Once()
	suite.mockBranches.On("FindBranchByName", ctx, "Downtown").
		Return(&domain.Branch{Name: "Downtown", IsActive: true}, nil).Once()
	suite.mockPurchases.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()
	suite.mockEvents.On("Publish", ctx, portssvc.EventPurchaseRecorded, mock.Anything).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, branchUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.NotEmpty(purchase.PurchaseID)
	suite.Equal(req.ItemName, purchase.ItemName)
	suite.True(purchase.Price.Equal(req.Price))
	suite.Equal(branchUserID, purchase.CreatedBy)
	suite.WithinDuration(time.Now(), purchase.CreatedAt, time.Second)

	suite.mockPurchases.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_BackdatedDate() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	backdated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePurchaseRequest{
		VendorID:   vendorID,
		BranchName: "Downtown",
		ItemName:   "Rice",
		Price:      decimal.NewFromInt(800),
		Date:       &backdated,
	}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: true}, nil).Once()
	suite.mockBranches.On("FindBranchByName", ctx, "Downtown").
		Return(&domain.Branch{Name: "Downtown"}, nil).Once()
	suite.mockPurchases.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()
	suite.mockEvents.On("Publish", ctx, portssvc.EventPurchaseRecorded, mock.Anything).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.True(purchase.CreatedAt.Equal(backdated))
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NegativePrice() {
	ctx := context.Background()
	adminID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		VendorID:   uuid.NewString(),
		BranchName: "Downtown",
		ItemName:   "Bad row",
		Price:      decimal.NewFromInt(-10),
	}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")

	purchase, err := suite.service.CreatePurchase(ctx, req, adminID)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchases.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_OtherBranchForbidden() {
	ctx := context.Background()
	branchUserID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		VendorID:   uuid.NewString(),
		BranchName: "Downtown",
		ItemName:   "Flour",
		Price:      decimal.NewFromInt(100),
	}

	suite.expectUser(branchUserID, domain.RoleBranch, "Uptown")

	purchase, err := suite.service.CreatePurchase(ctx, req, branchUserID)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DeactivatedVendor() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	adminID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		VendorID:   vendorID,
		BranchName: "Downtown",
		ItemName:   "Flour",
		Price:      decimal.NewFromInt(100),
	}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockVendors.On("FindVendorByID", ctx, vendorID).
		Return(&domain.Vendor{VendorID: vendorID, IsActive: false}, nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req, adminID)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID_ScopedToOwnBranch() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	branchUserID := uuid.NewString()
	purchase := &domain.Purchase{
		PurchaseID: purchaseID,
		VendorID:   uuid.NewString(),
		BranchName: "Downtown",
		ItemName:   "Sugar",
		Price:      decimal.NewFromInt(50),
	}

	suite.mockPurchases.On("FindPurchaseByID", ctx, purchaseID).Return(purchase, nil).Once()
	suite.expectUser(branchUserID, domain.RoleBranch, "Uptown")

	got, err := suite.service.GetPurchaseByID(ctx, purchaseID, branchUserID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_AdminOnly() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	branchUserID := uuid.NewString()

	suite.expectUser(branchUserID, domain.RoleBranch, "Downtown")

	err := suite.service.DeletePurchase(ctx, purchaseID, branchUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPurchases.AssertNotCalled(suite.T(), "DeletePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_Success() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	adminID := uuid.NewString()
	purchase := &domain.Purchase{PurchaseID: purchaseID, VendorID: uuid.NewString(), BranchName: "Downtown"}

	suite.expectUser(adminID, domain.RoleSuperAdmin, "")
	suite.mockPurchases.On("FindPurchaseByID", ctx, purchaseID).Return(purchase, nil).Once()
	suite.mockPurchases.On("DeletePurchase", ctx, purchaseID).Return(nil).Once()
	suite.mockEvents.On("Publish", ctx, portssvc.EventPurchaseDeleted, mock.Anything).Return(nil).Once()

	err := suite.service.DeletePurchase(ctx, purchaseID, adminID)

	suite.Require().NoError(err)
	suite.mockPurchases.AssertExpectations(suite.T())
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_NotFoundUserUnauthorized() {
	ctx := context.Background()

	suite.mockUserReader.On("GetUserByID", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	purchases, next, err := suite.service.ListPurchases(ctx, "", "", 10, nil, "ghost")

	suite.Require().Error(err)
	suite.Nil(purchases)
	suite.Nil(next)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
