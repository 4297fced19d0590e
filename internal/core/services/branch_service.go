package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// branchService implements BranchSvcFacade. Branch management is restricted
// to super admins.
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// BranchServiceOption is a functional option for configuring the branch service.
type BranchServiceOption func(*branchService)

// WithBranchUserReader adds the user reader used for role checks.
func WithBranchUserReader(reader portssvc.UserReaderSvc) BranchServiceOption {
	return func(s *branchService) {
		s.UserReader = reader
	}
}

// NewBranchService creates a new branch service.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade, options ...BranchServiceOption) portssvc.BranchSvcFacade {
	svc := &branchService{branchRepo: branchRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error) {
	if err := s.RequireSuperAdmin(ctx, creatorUserID); err != nil {
		s.LogError(ctx, err, "User not authorized to create branch", slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID: uuid.NewString(),
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save branch: %w", err)
	}

	s.LogInfo(ctx, "Branch created", slog.String("branch_id", branch.BranchID), slog.String("name", branch.Name))
	return &branch, nil
}

func (s *branchService) GetBranchByName(ctx context.Context, name string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByName(ctx, name)
}

func (s *branchService) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	return s.branchRepo.ListBranches(ctx, includeInactive)
}

func (s *branchService) DeactivateBranch(ctx context.Context, name, userID string) error {
	if err := s.RequireSuperAdmin(ctx, userID); err != nil {
		return err
	}

	branch, err := s.branchRepo.FindBranchByName(ctx, name)
	if err != nil {
		return err
	}

	if err := s.branchRepo.DeactivateBranch(ctx, branch.BranchID, userID); err != nil {
		return fmt.Errorf("failed to deactivate branch: %w", err)
	}

	s.LogInfo(ctx, "Branch deactivated", slog.String("name", name))
	return nil
}
