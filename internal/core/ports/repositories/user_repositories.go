package repositories

import (
	"context"
	"time"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID, deletedByUserID string) error

	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token; nil values clear it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
}
