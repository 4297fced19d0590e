package services

import (
	"context"
	"log/slog"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct {
	UserReader portssvc.UserReaderSvc
}

// GetLogger gets the request-scoped logger from context or a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeVendorBranchAccess checks whether the requesting user may operate
// on the given (vendor, branch) pair. Super admins see everything, branch
// users only their own branch, vendor users only their own vendor. Either
// vendorID or branchName may be empty when the operation is not scoped to it.
func (s *BaseService) AuthorizeVendorBranchAccess(ctx context.Context, userID, vendorID, branchName string) error {
	if s.UserReader == nil {
		s.LogDebug(ctx, "No user reader configured, access granted by default",
			slog.String("user_id", userID))
		return nil
	}

	user, err := s.UserReader.GetUserByID(ctx, userID)
	if err != nil {
		return apperrors.ErrUnauthorized
	}

	switch user.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleBranch:
		if branchName != "" && user.BranchName != branchName {
			return apperrors.ErrForbidden
		}
		return nil
	case domain.RoleVendor:
		if vendorID != "" && user.VendorID != vendorID {
			return apperrors.ErrForbidden
		}
		return nil
	default:
		return apperrors.ErrForbidden
	}
}

// AuthorizeBranchWrite checks that the requesting user may record entries
// against the given branch. Vendor logins are read-only.
func (s *BaseService) AuthorizeBranchWrite(ctx context.Context, userID, branchName string) error {
	if s.UserReader == nil {
		return nil
	}
	user, err := s.UserReader.GetUserByID(ctx, userID)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	switch user.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleBranch:
		if user.BranchName != branchName {
			return apperrors.ErrForbidden
		}
		return nil
	default:
		return apperrors.ErrForbidden
	}
}

// RequireSuperAdmin checks that the requesting user is a super admin.
func (s *BaseService) RequireSuperAdmin(ctx context.Context, userID string) error {
	if s.UserReader == nil {
		return nil
	}
	user, err := s.UserReader.GetUserByID(ctx, userID)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if user.Role != domain.RoleSuperAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
