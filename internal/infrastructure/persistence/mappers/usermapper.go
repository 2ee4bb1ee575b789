package mappers

import (
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID(),
		Role:        u.Role().String(),
		DisplayName: u.DisplayName(),
		Email:       optionalString(u.Email()),
		Phone:       optionalString(u.Phone()),
		SiteCode:    optionalString(u.SiteCode()),
		SiteName:    u.SiteName(),
		UnitLabel:   u.UnitLabel(),
		IsActive:    u.IsActive(),
		CreatedAt:   biztime.ToMillis(u.CreatedAt()),
		UpdatedAt:   biztime.ToMillis(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(
		model.ID,
		user.Role(model.Role),
		model.DisplayName,
		derefString(model.Email),
		derefString(model.Phone),
		derefString(model.SiteCode),
		model.SiteName,
		model.UnitLabel,
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}
	return u, nil
}

// optionalString maps "" to NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
