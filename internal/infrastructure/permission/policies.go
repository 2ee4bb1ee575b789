package permission

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/user"
)

const (
	methodsRead      = "^GET$"
	methodsReadWrite = "^(GET|POST)$"
	methodsPatch     = "^PATCH$"
)

// roleInheritance lists (member, parent) pairs. Admins do everything staff
// do, and super admins everything admins do.
var roleInheritance = [][2]user.Role{
	{user.RoleAdmin, user.RoleStaff},
	{user.RoleSuperAdmin, user.RoleAdmin},
}

var defaultPolicies = []struct {
	role   user.Role
	path   string
	method string
}{
	{user.RoleResident, "/api/v1/resident/*", methodsReadWrite},

	{user.RoleStaff, "/api/v1/admin/profile", methodsRead},
	{user.RoleStaff, "/api/v1/admin/staff", methodsRead},
	{user.RoleStaff, "/api/v1/admin/stats", methodsRead},
	{user.RoleStaff, "/api/v1/admin/complaints", methodsRead},
	{user.RoleStaff, "/api/v1/admin/complaints/*", "^(GET|POST|PATCH)$"},
	{user.RoleStaff, "/api/v1/admin/work-orders/*", methodsPatch},
	{user.RoleStaff, "/api/v1/admin/visits/*", methodsPatch},
	{user.RoleStaff, "/api/v1/admin/notices", methodsReadWrite},
	{user.RoleStaff, "/api/v1/admin/notices/*", methodsPatch},

	{user.RoleAdmin, "/api/v1/admin/profiles", "^PUT$"},
	{user.RoleAdmin, "/api/v1/admin/categories", methodsReadWrite},
	{user.RoleAdmin, "/api/v1/admin/categories/*", "^(GET|PUT|PATCH)$"},
	{user.RoleAdmin, "/api/v1/admin/faqs", methodsReadWrite},
	{user.RoleAdmin, "/api/v1/admin/faqs/*", methodsPatch},
	{user.RoleAdmin, "/api/v1/admin/notification-templates", "^(GET|PUT)$"},
	{user.RoleAdmin, "/api/v1/admin/notifications", methodsRead},
	{user.RoleAdmin, "/api/v1/admin/notifications/*", "^POST$"},

	{user.RoleSuperAdmin, "/api/v1/internal/notifications/*", methodsReadWrite},
}

// EnsureDefaultPolicies adds the built-in role policies that are missing.
// Existing rows, including operator additions, are left alone.
func (e *Enforcer) EnsureDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(p.role.String(), p.path, p.method)
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.role, p.path, p.method, err)
		}
		if ok {
			added++
		}
	}
	for _, g := range roleInheritance {
		ok, err := e.enforcer.AddGroupingPolicy(g[0].String(), g[1].String())
		if err != nil {
			return fmt.Errorf("failed to add role link [%s, %s]: %w", g[0], g[1], err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("default permissions ensured", "added", added)
	return nil
}
