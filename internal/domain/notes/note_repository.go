package notes

import (
	"context"

	"github.com/google/uuid"
)

// NoteRepository defines the persistence contract for notes. Every read and
// write is scoped to a tenant; a note under a different tenant is
// indistinguishable from one that does not exist.
type NoteRepository interface {
	// Create persists a new note
	Create(ctx context.Context, note *Note) error

	// FindByID finds a note by ID within the tenant.
	// Returns shared.ErrNotFound if no such note exists in the tenant.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Note, error)

	// ListByTenant returns all notes of the tenant, newest first
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Note, error)

	// Update persists changes to an existing note within the tenant.
	// Returns shared.ErrNotFound if no such note exists in the tenant.
	Update(ctx context.Context, note *Note) error

	// Delete removes a note by ID within the tenant.
	// Returns shared.ErrNotFound if no such note exists in the tenant.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountByTenant returns the number of notes the tenant holds
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
