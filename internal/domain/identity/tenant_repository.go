package identity

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository defines the persistence contract for tenants
type TenantRepository interface {
	// Create persists a new tenant
	Create(ctx context.Context, tenant *Tenant) error

	// Update persists changes to an existing tenant.
	// Returns shared.ErrNotFound if the tenant does not exist.
	Update(ctx context.Context, tenant *Tenant) error

	// FindByID finds a tenant by ID.
	// Returns shared.ErrNotFound if the tenant does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindBySlug finds a tenant by its slug.
	// Returns shared.ErrNotFound if the tenant does not exist.
	FindBySlug(ctx context.Context, slug string) (*Tenant, error)
}
