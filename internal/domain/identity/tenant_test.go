package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	t.Run("starts on the free tier", func(t *testing.T) {
		tenant, err := NewTenant("Acme Corp", "acme")
		require.NoError(t, err)

		assert.Equal(t, "Acme Corp", tenant.Name)
		assert.Equal(t, "acme", tenant.Slug)
		assert.Equal(t, SubscriptionFree, tenant.Subscription)
		assert.False(t, tenant.IsPro())
		assert.NotEqual(t, "", tenant.ID.String())
	})

	t.Run("rejects invalid slugs", func(t *testing.T) {
		for _, slug := range []string{"", "Acme", "acme_corp", "-acme", "acme-", "acme corp", strings.Repeat("a", 101)} {
			_, err := NewTenant("Acme Corp", slug)
			assert.Error(t, err, "slug %q should be rejected", slug)
		}
	})

	t.Run("accepts hyphenated slugs", func(t *testing.T) {
		_, err := NewTenant("Globex Inc", "globex-inc-42")
		assert.NoError(t, err)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := NewTenant("   ", "acme")
		assert.Error(t, err)
	})
}

func TestTenantUpgrade(t *testing.T) {
	tenant, err := NewTenant("Acme Corp", "acme")
	require.NoError(t, err)

	tenant.Upgrade()
	assert.Equal(t, SubscriptionPro, tenant.Subscription)
	assert.True(t, tenant.IsPro())

	// repeat upgrade leaves the tenant pro
	tenant.Upgrade()
	assert.Equal(t, SubscriptionPro, tenant.Subscription)
}

func TestTenantNoteLimit(t *testing.T) {
	tenant, err := NewTenant("Acme Corp", "acme")
	require.NoError(t, err)

	assert.Equal(t, FreeNoteLimit, tenant.NoteLimit())

	tenant.Upgrade()
	assert.Equal(t, -1, tenant.NoteLimit())
}
