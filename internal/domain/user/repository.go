package user

import "context"

// Repository defines the interface for profile lookups
type Repository interface {
	// Upsert creates or updates a profile keyed by ID when set, otherwise by email
	Upsert(ctx context.Context, user *User) error

	// GetByID returns nil, nil when the profile does not exist
	GetByID(ctx context.Context, id uint) (*User, error)

	// ListStaffBySite returns active STAFF and ADMIN profiles of a site
	ListStaffBySite(ctx context.Context, siteCode string) ([]*User, error)
}
