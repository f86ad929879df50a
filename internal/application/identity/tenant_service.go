package identity

import (
	"context"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Upgrade authorization failures, kept distinct so the HTTP layer can
// surface the exact reason.
var (
	ErrUpgradeNotAdmin = shared.NewDomainError("FORBIDDEN", "Only admins can upgrade subscription")
	ErrUpgradeForeign  = shared.NewDomainError("FORBIDDEN", "You can only upgrade your own tenant")
)

// TenantService implements tenant subscription management
type TenantService struct {
	tenants identity.TenantRepository
	logger  *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(tenants identity.TenantRepository, logger *zap.Logger) *TenantService {
	return &TenantService{tenants: tenants, logger: logger}
}

// Upgrade moves the caller's tenant to the pro tier. The role check runs
// before the ownership check: a member asking about a foreign slug learns
// only that it lacks the role. Upgrading an already-pro tenant succeeds
// unchanged.
func (s *TenantService) Upgrade(ctx context.Context, caller *identity.CallerContext, slug string) (*identity.Tenant, error) {
	if !caller.IsAdmin() {
		return nil, ErrUpgradeNotAdmin
	}
	if slug != caller.TenantSlug {
		return nil, ErrUpgradeForeign
	}

	tenant, err := s.tenants.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if tenant.IsPro() {
		return tenant, nil
	}

	tenant.Upgrade()
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant upgraded to pro",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("slug", tenant.Slug),
		zap.String("upgraded_by", caller.UserID.String()),
	)

	return tenant, nil
}
