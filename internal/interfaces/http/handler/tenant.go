package handler

import (
	appidentity "github.com/saasnotes/backend/internal/application/identity"
	"github.com/saasnotes/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHandler serves tenant subscription management
type TenantHandler struct {
	BaseHandler
	tenants *appidentity.TenantService
	logger  *zap.Logger
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *appidentity.TenantService, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{tenants: tenantService, logger: logger}
}

// RegisterRoutes registers tenant routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/tenants")
	{
		group.POST("/:slug/upgrade", h.Upgrade)
	}
}

// Upgrade moves the caller's tenant to the pro tier. Admin only, and only
// for the caller's own slug.
func (h *TenantHandler) Upgrade(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenant, err := h.tenants.Upgrade(c.Request.Context(), caller, c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.UpgradeResponse{
		Message: "Tenant upgraded to Pro successfully",
		Tenant:  dto.NewTenantResponse(tenant),
	})
}
