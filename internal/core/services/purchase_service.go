package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// purchaseService implements PurchaseSvcFacade.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	vendorRepo   portsrepo.VendorRepositoryFacade
	branchRepo   portsrepo.BranchRepositoryFacade
	events       portssvc.EventPublisher
}

// PurchaseServiceOption is a functional option for configuring the purchase service.
type PurchaseServiceOption func(*purchaseService)

// WithPurchaseUserReader adds the user reader used for role-based scoping.
func WithPurchaseUserReader(reader portssvc.UserReaderSvc) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.UserReader = reader
	}
}

// WithPurchaseEventPublisher adds the audit event publisher.
func WithPurchaseEventPublisher(events portssvc.EventPublisher) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.events = events
	}
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		purchaseRepo: purchaseRepo,
		vendorRepo:   vendorRepo,
		branchRepo:   branchRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	if err := s.AuthorizeBranchWrite(ctx, creatorUserID, req.BranchName); err != nil {
		s.LogError(ctx, err, "User not authorized to record purchase",
			slog.String("user_id", creatorUserID),
			slog.String("branch_name", req.BranchName))
		return nil, err
	}

	if req.Price.IsNegative() {
		return nil, apperrors.NewAppError(400, "purchase price must not be negative", apperrors.ErrValidation)
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}
	if !vendor.IsActive {
		return nil, apperrors.NewAppError(400, "vendor is deactivated", apperrors.ErrValidation)
	}

	if _, err := s.branchRepo.FindBranchByName(ctx, req.BranchName); err != nil {
		return nil, fmt.Errorf("failed to look up branch: %w", err)
	}

	createdAt := time.Now()
	if req.Date != nil && !req.Date.IsZero() {
		createdAt = *req.Date
	}

	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		VendorID:   req.VendorID,
		BranchName: req.BranchName,
		ItemName:   req.ItemName,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
		PhotoURL:   req.PhotoURL,
		CreatedAt:  createdAt,
		CreatedBy:  creatorUserID,
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase",
			slog.String("vendor_id", req.VendorID),
			slog.String("branch_name", req.BranchName))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.publishEvent(ctx, portssvc.EventPurchaseRecorded, purchase)

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("vendor_id", purchase.VendorID),
		slog.String("branch_name", purchase.BranchName),
		slog.String("price", purchase.Price.String()))

	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID, requestingUserID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := s.AuthorizeVendorBranchAccess(ctx, requestingUserID, purchase.VendorID, purchase.BranchName); err != nil {
		return nil, err
	}

	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string, requestingUserID string) ([]domain.Purchase, *string, error) {
	if err := s.AuthorizeVendorBranchAccess(ctx, requestingUserID, vendorID, branchName); err != nil {
		return nil, nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	purchases, next, err := s.purchaseRepo.ListPurchases(ctx, branchName, vendorID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, next, nil
}

// DeletePurchase removes a purchase record. Only super admins may delete;
// the purchase stream is otherwise append-only.
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID, requestingUserID string) error {
	if err := s.RequireSuperAdmin(ctx, requestingUserID); err != nil {
		s.LogError(ctx, err, "User not authorized to delete purchase",
			slog.String("user_id", requestingUserID),
			slog.String("purchase_id", purchaseID))
		return err
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return err
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	s.publishEvent(ctx, portssvc.EventPurchaseDeleted, purchase)

	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", purchaseID))
	return nil
}

// publishEvent sends an audit event; failures are logged, never surfaced.
func (s *purchaseService) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, payload); err != nil {
		s.LogError(ctx, err, "Failed to publish audit event", slog.String("event_type", eventType))
	}
}
