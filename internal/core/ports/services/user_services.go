package services

import (
	"context"
	"time"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// UserReaderSvc is the narrow read interface other services use for
// role-based scoping decisions.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserSvcFacade defines user management and credential operations.
type UserSvcFacade interface {
	UserReaderSvc

	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// RegisterUser provisions a self-registered login. Like Google sign-ins
	// it gets the most restricted role until an admin links it to a branch
	// or vendor.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID, deleterUserID string) error

	// AuthenticateUser verifies a username/password pair.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateGoogleUser provisions a login for a verified Google
	// identity; idempotent on the Google email.
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)

	// UpdateRefreshToken persists the hash of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}
