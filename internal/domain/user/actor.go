package user

// Actor is the resolved identity a request runs as. Site and unit always
// come from the stored profile.
type Actor struct {
	UserID    uint
	Role      Role
	SiteCode  string
	SiteName  string
	UnitLabel string
}

func (a Actor) IsResident() bool {
	return a.Role == RoleResident
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// CanSeeSite reports whether the actor may read or write data of siteCode.
func (a Actor) CanSeeSite(siteCode string) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.SiteCode != "" && a.SiteCode == siteCode
}

// SiteFilter returns the site the actor's queries are pinned to, or the
// requested site for super admins (empty means all sites).
func (a Actor) SiteFilter(requested string) string {
	if a.IsSuperAdmin() {
		return requested
	}
	return a.SiteCode
}
