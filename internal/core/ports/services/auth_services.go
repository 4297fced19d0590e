package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// TokenSvcFacade issues and validates access and refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	// Only a hash of the returned token is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the user's stored hash and expiry.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google sign-in plumbing used by the mobile
// client's exchange-code flow.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
