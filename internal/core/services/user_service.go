package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
	"github.com/vendorkhata/vendor_khata_app/internal/utils"
)

// userService implements UserSvcFacade.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service. The user service is its own
// user reader.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo}
	svc.UserReader = svc
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	switch role {
	case domain.RoleSuperAdmin, domain.RoleBranch, domain.RoleVendor:
	default:
		return nil, apperrors.NewAppError(400, "invalid role", apperrors.ErrValidation)
	}
	if role == domain.RoleBranch && req.BranchName == "" {
		return nil, apperrors.NewAppError(400, "branchName is required for BRANCH users", apperrors.ErrValidation)
	}
	if role == domain.RoleVendor && req.VendorID == "" {
		return nil, apperrors.NewAppError(400, "vendorID is required for VENDOR users", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         role,
		BranchName:   req.BranchName,
		VendorID:     req.VendorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "username already taken", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// RegisterUser provisions a self-registered login. It mirrors the Google
// sign-in path: the account starts with the most restricted role and no
// branch or vendor link until a super admin assigns one.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         domain.RoleVendor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "username already taken", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User self-registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	if req.BranchName != nil {
		user.BranchName = *req.BranchName
	}
	if req.VendorID != nil {
		user.VendorID = *req.VendorID
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID, deleterUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies a username/password pair. It returns
// ErrUnauthorized on any mismatch so callers cannot distinguish a missing
// user from a wrong password.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// FindOrCreateGoogleUser provisions a login for a verified Google identity.
// The Google email doubles as the username, which makes this idempotent.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// New Google sign-ins default to the most restricted role until a super
	// admin links them to a branch or vendor.
	now := time.Now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Username: email,
		Name:     name,
		Role:     domain.RoleVendor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent sign-in for the same email.
			return s.userRepo.FindUserByUsername(ctx, email)
		}
		return nil, fmt.Errorf("failed to provision google user: %w", err)
	}

	s.LogInfo(ctx, "Provisioned user from Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, &tokenHash, &expiresAt)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
}
