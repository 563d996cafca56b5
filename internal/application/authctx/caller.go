// Package authctx carries the authenticated caller through application
// services. Handlers build a Caller from the verified token and pass it
// down explicitly; services never reach into transport state themselves.
package authctx

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// Caller is the authenticated principal performing an operation
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   identity.Role
}

// IsAdmin returns true if the caller holds the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == identity.RoleAdmin
}

// Identity returns a human-readable identity string for error messages
func (c Caller) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.UserID.String()
}

// RequireAdmin returns a permission error naming the caller when the
// caller is not an admin
func (c Caller) RequireAdmin() error {
	if c.IsAdmin() {
		return nil
	}
	return shared.NewDomainError("FORBIDDEN", fmt.Sprintf("User %s is not permitted to perform this action", c.Identity()))
}
