package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// vendorService implements VendorSvcFacade.
type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
	txnRepo    portsrepo.VendorTransactionRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
	events     portssvc.EventPublisher
}

// VendorServiceOption is a functional option for configuring the vendor service.
type VendorServiceOption func(*vendorService)

// WithVendorUserReader adds the user reader used for role-based scoping.
func WithVendorUserReader(reader portssvc.UserReaderSvc) VendorServiceOption {
	return func(s *vendorService) {
		s.UserReader = reader
	}
}

// WithVendorEventPublisher adds the audit event publisher.
func WithVendorEventPublisher(events portssvc.EventPublisher) VendorServiceOption {
	return func(s *vendorService) {
		s.events = events
	}
}

// NewVendorService creates a new vendor service.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade, txnRepo portsrepo.VendorTransactionRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade, options ...VendorServiceOption) portssvc.VendorSvcFacade {
	svc := &vendorService{
		vendorRepo: vendorRepo,
		txnRepo:    txnRepo,
		branchRepo: branchRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	if err := s.RequireSuperAdmin(ctx, creatorUserID); err != nil {
		s.LogError(ctx, err, "User not authorized to create vendor", slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	vendor := domain.Vendor{
		VendorID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	s.LogInfo(ctx, "Vendor created", slog.String("vendor_id", vendor.VendorID), slog.String("name", vendor.Name))
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *vendorService) ListVendors(ctx context.Context, includeInactive bool) ([]domain.Vendor, error) {
	return s.vendorRepo.ListVendors(ctx, includeInactive)
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error) {
	if err := s.RequireSuperAdmin(ctx, userID); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = userID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

func (s *vendorService) DeactivateVendor(ctx context.Context, vendorID, userID string) error {
	if err := s.RequireSuperAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.vendorRepo.DeactivateVendor(ctx, vendorID, userID); err != nil {
		return fmt.Errorf("failed to deactivate vendor: %w", err)
	}

	s.LogInfo(ctx, "Vendor deactivated", slog.String("vendor_id", vendorID))
	return nil
}

// RecordPayment stores a positive transaction reducing what the branch owes
// the vendor.
func (s *vendorService) RecordPayment(ctx context.Context, vendorID string, req dto.RecordPaymentRequest, userID string) (*domain.VendorTransaction, error) {
	if !req.HasPositiveAmount() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}
	txn, err := s.recordTransaction(ctx, vendorID, req.BranchName, req.Amount, req.Comment, req.Date, userID)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, portssvc.EventPaymentRecorded, txn)
	return txn, nil
}

// RecordAdjustment stores a negative transaction increasing what the branch
// owes. The request amount is positive and negated on storage.
func (s *vendorService) RecordAdjustment(ctx context.Context, vendorID string, req dto.RecordAdjustmentRequest, userID string) (*domain.VendorTransaction, error) {
	if !req.HasPositiveAmount() {
		return nil, apperrors.NewAppError(400, "adjustment amount must be positive", apperrors.ErrValidation)
	}
	txn, err := s.recordTransaction(ctx, vendorID, req.BranchName, req.Amount.Neg(), req.Comment, req.Date, userID)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, portssvc.EventAdjustmentRecorded, txn)
	return txn, nil
}

func (s *vendorService) recordTransaction(ctx context.Context, vendorID, branchName string, amount decimal.Decimal, comment string, date *time.Time, userID string) (*domain.VendorTransaction, error) {
	if err := s.AuthorizeBranchWrite(ctx, userID, branchName); err != nil {
		s.LogError(ctx, err, "User not authorized to record vendor transaction",
			slog.String("user_id", userID),
			slog.String("vendor_id", vendorID),
			slog.String("branch_name", branchName))
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}
	if !vendor.IsActive {
		return nil, apperrors.NewAppError(400, "vendor is deactivated", apperrors.ErrValidation)
	}

	if _, err := s.branchRepo.FindBranchByName(ctx, branchName); err != nil {
		return nil, fmt.Errorf("failed to look up branch: %w", err)
	}

	createdAt := time.Now()
	if date != nil && !date.IsZero() {
		createdAt = *date
	}

	txn := domain.VendorTransaction{
		TransactionID: uuid.NewString(),
		VendorID:      vendorID,
		BranchName:    branchName,
		Amount:        amount,
		Comment:       comment,
		CreatedAt:     createdAt,
		CreatedBy:     userID,
	}

	if err := s.txnRepo.SaveVendorTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save vendor transaction",
			slog.String("vendor_id", vendorID),
			slog.String("branch_name", branchName))
		return nil, fmt.Errorf("failed to save vendor transaction: %w", err)
	}

	s.LogInfo(ctx, "Vendor transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("vendor_id", vendorID),
		slog.String("amount", amount.String()))

	return &txn, nil
}

func (s *vendorService) ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string, requestingUserID string) ([]domain.VendorTransaction, *string, error) {
	if err := s.AuthorizeVendorBranchAccess(ctx, requestingUserID, vendorID, branchName); err != nil {
		return nil, nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	txns, next, err := s.txnRepo.ListVendorTransactions(ctx, vendorID, branchName, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list vendor transactions: %w", err)
	}
	return txns, next, nil
}

// publishEvent sends an audit event; failures are logged, never surfaced.
func (s *vendorService) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, payload); err != nil {
		s.LogError(ctx, err, "Failed to publish audit event", slog.String("event_type", eventType))
	}
}
