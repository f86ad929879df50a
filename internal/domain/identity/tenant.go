package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/saasnotes/backend/internal/domain/shared"
)

// Subscription represents a tenant's subscription tier
type Subscription string

const (
	SubscriptionFree Subscription = "free"
	SubscriptionPro  Subscription = "pro"
)

// FreeNoteLimit is the maximum number of notes a free tenant may hold
const FreeNoteLimit = 3

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Tenant represents an isolated customer workspace. The slug is the tenant's
// stable external identifier and never changes after creation.
type Tenant struct {
	shared.BaseEntity
	Name         string
	Slug         string
	Subscription Subscription
}

// NewTenant creates a new tenant on the free tier
func NewTenant(name, slug string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Tenant{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Slug:         slug,
		Subscription: SubscriptionFree,
	}, nil
}

// Upgrade moves the tenant to the pro tier. Upgrading a tenant that is
// already pro is a no-op and succeeds.
func (t *Tenant) Upgrade() {
	if t.Subscription == SubscriptionPro {
		return
	}
	t.Subscription = SubscriptionPro
	t.UpdatedAt = time.Now()
}

// IsPro returns true if the tenant is on the pro tier
func (t *Tenant) IsPro() bool {
	return t.Subscription == SubscriptionPro
}

// NoteLimit returns the maximum number of notes the tenant may hold,
// or -1 for unlimited.
func (t *Tenant) NoteLimit() int {
	if t.IsPro() {
		return -1
	}
	return FreeNoteLimit
}

func validateTenantName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 100 characters")
	}
	if !slugRegex.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug can only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}
