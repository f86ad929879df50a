package billing

import (
	"context"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/notes"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// QuotaService enforces the per-tenant note quota. Free tenants may hold
// strictly fewer than identity.FreeNoteLimit notes at admission time; pro
// tenants are unlimited.
type QuotaService struct {
	notes notes.NoteRepository
}

// NewQuotaService creates a new QuotaService
func NewQuotaService(noteRepo notes.NoteRepository) *QuotaService {
	return &QuotaService{notes: noteRepo}
}

// CheckCanCreateNote returns shared.ErrQuotaExceeded when the caller's free
// tenant is at its note limit. The subscription comes from the caller
// context, which is resolved fresh per request, so an upgrade takes effect
// immediately.
//
// The count and the subsequent insert are separate statements, not one
// transaction. Two concurrent creates racing at the boundary can both pass
// the check and leave the tenant one note over the cap. This mirrors the
// admission-time semantics the limit is defined with; closing the window
// would need a tenant-scoped lock or a DB constraint.
func (s *QuotaService) CheckCanCreateNote(ctx context.Context, caller *identity.CallerContext) error {
	if caller.Subscription == identity.SubscriptionPro {
		return nil
	}

	count, err := s.notes.CountByTenant(ctx, caller.TenantID)
	if err != nil {
		return err
	}

	if count >= identity.FreeNoteLimit {
		logger.FromContext(ctx).Info("Note quota reached",
			zap.String("tenant_id", caller.TenantID.String()),
			zap.Int64("note_count", count))
		return shared.ErrQuotaExceeded
	}
	return nil
}
