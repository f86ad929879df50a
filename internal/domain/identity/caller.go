package identity

import "github.com/google/uuid"

// CallerContext is the authenticated identity attached to a request. It is
// rebuilt from storage on every request so role, tenant, and subscription
// always reflect current state. Tenant scope comes only from here, never
// from client-supplied input.
type CallerContext struct {
	UserID       uuid.UUID
	Email        string
	Role         Role
	TenantID     uuid.UUID
	TenantName   string
	TenantSlug   string
	Subscription Subscription
}

// NewCallerContext builds a caller context from a user and its tenant
func NewCallerContext(user *User, tenant *Tenant) *CallerContext {
	return &CallerContext{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TenantID:     tenant.ID,
		TenantName:   tenant.Name,
		TenantSlug:   tenant.Slug,
		Subscription: tenant.Subscription,
	}
}

// IsAdmin returns true if the caller holds the admin role
func (c *CallerContext) IsAdmin() bool {
	return c.Role == RoleAdmin
}
