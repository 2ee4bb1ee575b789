package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewMemoryEnforcer(logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.EnsureDefaultPolicies())
	return e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		name    string
		role    string
		path    string
		method  string
		allowed bool
	}{
		{"resident submits", "RESIDENT", "/api/v1/resident/complaints", "POST", true},
		{"resident reads own complaint", "RESIDENT", "/api/v1/resident/complaints/12", "GET", true},
		{"resident cannot patch", "RESIDENT", "/api/v1/resident/complaints/12", "PATCH", false},
		{"resident cannot list admin", "RESIDENT", "/api/v1/admin/complaints", "GET", false},
		{"staff lists complaints", "STAFF", "/api/v1/admin/complaints", "GET", true},
		{"staff triages", "STAFF", "/api/v1/admin/complaints/3/triage", "POST", true},
		{"staff patches work order", "STAFF", "/api/v1/admin/work-orders/9", "PATCH", true},
		{"staff checks out visit", "STAFF", "/api/v1/admin/visits/4/checkout", "PATCH", true},
		{"staff cannot edit categories", "STAFF", "/api/v1/admin/categories", "POST", false},
		{"staff cannot use resident routes", "STAFF", "/api/v1/resident/complaints", "GET", false},
		{"admin inherits staff", "ADMIN", "/api/v1/admin/complaints/3", "GET", true},
		{"admin edits categories", "ADMIN", "/api/v1/admin/categories/2", "PATCH", true},
		{"admin cannot claim notifications", "ADMIN", "/api/v1/internal/notifications/claim", "POST", false},
		{"super admin inherits admin", "SUPER_ADMIN", "/api/v1/admin/faqs", "POST", true},
		{"super admin claims notifications", "SUPER_ADMIN", "/api/v1/internal/notifications/claim", "POST", true},
		{"method regexp is anchored", "STAFF", "/api/v1/admin/complaints", "GETX", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.path, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestEnforcer_EnsureDefaultPoliciesIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, e.EnsureDefaultPolicies())

	allowed, err := e.Enforce("RESIDENT", "/api/v1/resident/complaints", "GET")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcer_AddAndRemovePolicy(t *testing.T) {
	e := newTestEnforcer(t)

	require.NoError(t, e.AddPolicy("RESIDENT", "/api/v1/admin/stats", methodsRead))
	allowed, err := e.Enforce("RESIDENT", "/api/v1/admin/stats", "GET")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy("RESIDENT", "/api/v1/admin/stats", methodsRead))
	allowed, err = e.Enforce("RESIDENT", "/api/v1/admin/stats", "GET")
	require.NoError(t, err)
	assert.False(t, allowed)
}
