package dto

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

// UserResponse represents a profile in API responses
type UserResponse struct {
	ID          uint      `json:"id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	SiteCode    string    `json:"site_code,omitempty"`
	SiteName    string    `json:"site_name,omitempty"`
	UnitLabel   string    `json:"unit_label,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertProfileRequest mirrors a profile from the identity provider. The ID
// is the identity provider's user ID.
type UpsertProfileRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=RESIDENT STAFF ADMIN SUPER_ADMIN"`
	DisplayName string `json:"display_name" binding:"required,notblank,max=100"`
	Email       string `json:"email" binding:"omitempty,email,max=255"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	SiteCode    string `json:"site_code" binding:"omitempty,max=50"`
	SiteName    string `json:"site_name" binding:"omitempty,max=100"`
	UnitLabel   string `json:"unit_label" binding:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID(),
		Role:        u.Role().String(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		Phone:       u.Phone(),
		SiteCode:    u.SiteCode(),
		SiteName:    u.SiteName(),
		UnitLabel:   u.UnitLabel(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func ToUserResponseList(users []*user.User) []*UserResponse {
	out := mapper.MapSlice(users, ToUserResponse)
	if out == nil {
		return []*UserResponse{}
	}
	return out
}
