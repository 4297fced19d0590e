package dto

import (
	"time"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// CreateUserRequest registers a new login. BranchName is required for BRANCH
// users, VendorID for VENDOR users.
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Name       string `json:"name" binding:"required,max=255"`
	Role       string `json:"role" binding:"required,oneof=SUPERADMIN BRANCH VENDOR"`
	BranchName string `json:"branchName" binding:"omitempty,max=100"`
	VendorID   string `json:"vendorID" binding:"omitempty,uuid"`
}

// UpdateUserRequest patches mutable user fields. Nil pointers are left
// unchanged.
type UpdateUserRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Password   *string `json:"password" binding:"omitempty,min=8,max=72"`
	BranchName *string `json:"branchName" binding:"omitempty,max=100"`
	VendorID   *string `json:"vendorID" binding:"omitempty,uuid"`
}

// UserResponse is a user as returned by the API. Credential material is never
// included.
type UserResponse struct {
	UserID     string    `json:"userID"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	BranchName string    `json:"branchName,omitempty"`
	VendorID   string    `json:"vendorID,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RegisterRequest self-registers a new login. Role assignment happens later
// through a super admin.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair plus the authenticated user.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleExchangeCodeRequest exchanges a Google OAuth authorization code for an
// application token pair.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleIDTokenRequest signs in with a Google ID token obtained client side.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ToUserResponse converts a domain user to its response DTO.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Username:   u.Username,
		Name:       u.Name,
		Role:       string(u.Role),
		BranchName: u.BranchName,
		VendorID:   u.VendorID,
		CreatedAt:  u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
