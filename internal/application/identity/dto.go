package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/identity"
)

// RegisterOrLoginRequest represents a combined register/login submission
type RegisterOrLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateProfileRequest represents a profile edit
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	AvatarKey   *string `json:"avatar_key" binding:"omitempty,max=500"`
}

// AssignRoleRequest represents an admin role assignment
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer admin"`
}

// UserListFilter represents query parameters for listing users
type UserListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarKey   string    `json:"avatar_key,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResponse represents a successful register or login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
	Created   bool         `json:"created"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarKey:   u.AvatarKey,
		Bio:         u.Bio,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}
