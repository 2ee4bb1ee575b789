// Package user holds resident and staff profiles and the per-request actor
// derived from them.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// User is a profile owned by the identity provider and mirrored locally so
// that tenancy (site and unit) is never taken from the request body.
type User struct {
	id          uint
	role        Role
	displayName string
	email       string
	phone       string
	siteCode    string
	siteName    string
	unitLabel   string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates an active profile. Residents must carry a site and unit;
// staff must carry a site; super admins may have neither.
func NewUser(role Role, displayName, email, phone, siteCode, siteName, unitLabel string) (*User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if role != RoleSuperAdmin && siteCode == "" {
		return nil, fmt.Errorf("site code is required for role %s", role)
	}
	if role == RoleResident && unitLabel == "" {
		return nil, fmt.Errorf("unit label is required for residents")
	}

	now := biztime.NowUTC()
	return &User{
		role:        role,
		displayName: displayName,
		email:       email,
		phone:       phone,
		siteCode:    siteCode,
		siteName:    siteName,
		unitLabel:   unitLabel,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructUser rebuilds a profile from persistence.
func ReconstructUser(
	id uint,
	role Role,
	displayName, email, phone string,
	siteCode, siteName, unitLabel string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:          id,
		role:        role,
		displayName: displayName,
		email:       email,
		phone:       phone,
		siteCode:    siteCode,
		siteName:    siteName,
		unitLabel:   unitLabel,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *User) ID() uint { return u.id }
func (u *User) Role() Role { return u.role }
func (u *User) DisplayName() string { return u.displayName }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) SiteCode() string { return u.siteCode }
func (u *User) SiteName() string { return u.siteName }
func (u *User) UnitLabel() string { return u.unitLabel }
func (u *User) IsActive() bool { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Actor returns the request actor for this profile.
func (u *User) Actor() Actor {
	return Actor{
		UserID:    u.id,
		Role:      u.role,
		SiteCode:  u.siteCode,
		SiteName:  u.siteName,
		UnitLabel: u.unitLabel,
	}
}

func (u *User) SetActive(active bool) {
	u.isActive = active
	u.updatedAt = biztime.NowUTC()
}
