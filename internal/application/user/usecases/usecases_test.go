package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/application/user/dto"
	domainUser "github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type mockUserRepository struct {
	UpsertFunc          func(ctx context.Context, u *domainUser.User) error
	GetByIDFunc         func(ctx context.Context, id uint) (*domainUser.User, error)
	ListStaffBySiteFunc func(ctx context.Context, siteCode string) ([]*domainUser.User, error)
	upserted            []*domainUser.User
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *domainUser.User) error {
	m.upserted = append(m.upserted, u)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ListStaffBySite(ctx context.Context, siteCode string) ([]*domainUser.User, error) {
	if m.ListStaffBySiteFunc != nil {
		return m.ListStaffBySiteFunc(ctx, siteCode)
	}
	return nil, nil
}

func newProfile(t *testing.T, id uint, role domainUser.Role, site, unit string, active bool) *domainUser.User {
	t.Helper()
	u, err := domainUser.ReconstructUser(id, role, "Kim", "kim@example.com", "010-1234-5678", site, "Green Park", unit, active, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestResolveActor(t *testing.T) {
	resident := func(t *testing.T) *domainUser.User {
		return newProfile(t, 7, domainUser.RoleResident, "SITE-A", "101-1203", true)
	}

	tests := []struct {
		name     string
		userID   uint
		role     domainUser.Role
		profile  func(t *testing.T) *domainUser.User
		repoErr  error
		wantType errors.ErrorType
	}{
		{name: "resolved", userID: 7, role: domainUser.RoleResident, profile: resident},
		{name: "missing subject", userID: 0, role: domainUser.RoleResident, wantType: errors.ErrorTypeUnauthorized},
		{name: "unknown profile", userID: 7, role: domainUser.RoleResident, wantType: errors.ErrorTypeUnauthorized},
		{name: "inactive", userID: 7, role: domainUser.RoleResident, wantType: errors.ErrorTypeUnauthorized,
			profile: func(t *testing.T) *domainUser.User {
				return newProfile(t, 7, domainUser.RoleResident, "SITE-A", "101-1203", false)
			}},
		{name: "role mismatch", userID: 7, role: domainUser.RoleAdmin, profile: resident, wantType: errors.ErrorTypeUnauthorized},
		{name: "storage failure", userID: 7, role: domainUser.RoleResident, repoErr: stderrors.New("down"), wantType: errors.ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*domainUser.User, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					if tt.profile == nil {
						return nil, nil
					}
					return tt.profile(t), nil
				},
			}
			uc := NewResolveActorUseCase(repo, logger.NewNop())

			actor, err := uc.Execute(context.Background(), tt.userID, tt.role)
			if tt.wantType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domainUser.Actor{
				UserID:    7,
				Role:      domainUser.RoleResident,
				SiteCode:  "SITE-A",
				SiteName:  "Green Park",
				UnitLabel: "101-1203",
			}, actor)
		})
	}
}

func TestUpsertProfile_Authorization(t *testing.T) {
	siteAdmin := domainUser.Actor{UserID: 2, Role: domainUser.RoleAdmin, SiteCode: "SITE-A"}
	superAdmin := domainUser.Actor{UserID: 1, Role: domainUser.RoleSuperAdmin}
	staff := domainUser.Actor{UserID: 3, Role: domainUser.RoleStaff, SiteCode: "SITE-A"}

	residentReq := dto.UpsertProfileRequest{ID: 7, Role: "RESIDENT", DisplayName: "Kim", SiteCode: "site-a", UnitLabel: "101-1203"}

	tests := []struct {
		name     string
		actor    domainUser.Actor
		req      dto.UpsertProfileRequest
		existing *domainUser.User
		wantType errors.ErrorType
	}{
		{name: "site admin own site", actor: siteAdmin, req: residentReq},
		{name: "super admin any site", actor: superAdmin, req: dto.UpsertProfileRequest{ID: 8, Role: "STAFF", DisplayName: "Lee", SiteCode: "SITE-B"}},
		{name: "staff cannot manage profiles", actor: staff, req: residentReq, wantType: errors.ErrorTypeForbidden},
		{name: "site admin other site", actor: siteAdmin, req: dto.UpsertProfileRequest{ID: 8, Role: "STAFF", DisplayName: "Lee", SiteCode: "SITE-B"}, wantType: errors.ErrorTypeForbidden},
		{name: "site admin grants super admin", actor: siteAdmin, req: dto.UpsertProfileRequest{ID: 8, Role: "SUPER_ADMIN", DisplayName: "Root", SiteCode: "SITE-A"}, wantType: errors.ErrorTypeForbidden},
		{name: "site admin moves foreign profile", actor: siteAdmin, req: residentReq,
			existing: func() *domainUser.User {
				u, _ := domainUser.ReconstructUser(7, domainUser.RoleResident, "Kim", "", "", "SITE-B", "", "1-1", true, time.Now(), time.Now())
				return u
			}(),
			wantType: errors.ErrorTypeForbidden},
		{name: "resident without unit", actor: superAdmin, req: dto.UpsertProfileRequest{ID: 9, Role: "RESIDENT", DisplayName: "Park", SiteCode: "SITE-A"}, wantType: errors.ErrorTypeValidation},
		{name: "unknown role", actor: superAdmin, req: dto.UpsertProfileRequest{ID: 9, Role: "JANITOR", DisplayName: "Park"}, wantType: errors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*domainUser.User, error) {
					return tt.existing, nil
				},
			}
			uc := NewUpsertProfileUseCase(repo, logger.NewNop())

			out, err := uc.Execute(context.Background(), tt.actor, tt.req)
			if tt.wantType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
				assert.Empty(t, repo.upserted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.ID, out.ID)
			assert.True(t, out.IsActive)
			require.Len(t, repo.upserted, 1)
		})
	}
}

func TestUpsertProfile_Deactivate(t *testing.T) {
	repo := &mockUserRepository{}
	uc := NewUpsertProfileUseCase(repo, logger.NewNop())
	inactive := false

	out, err := uc.Execute(context.Background(), domainUser.Actor{UserID: 1, Role: domainUser.RoleSuperAdmin}, dto.UpsertProfileRequest{
		ID: 5, Role: "STAFF", DisplayName: " Choi ", SiteCode: "SITE-A", IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, "Choi", out.DisplayName)
}

func TestListSiteStaff(t *testing.T) {
	var gotSite string
	repo := &mockUserRepository{
		ListStaffBySiteFunc: func(ctx context.Context, siteCode string) ([]*domainUser.User, error) {
			gotSite = siteCode
			return nil, nil
		},
	}
	uc := NewListSiteStaffUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), domainUser.Actor{UserID: 2, Role: domainUser.RoleStaff, SiteCode: "SITE-A"}, "SITE-B")
	require.NoError(t, err)
	assert.Equal(t, "SITE-A", gotSite)
	assert.NotNil(t, out)

	_, err = uc.Execute(context.Background(), domainUser.Actor{UserID: 1, Role: domainUser.RoleSuperAdmin}, "")
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), domainUser.Actor{UserID: 7, Role: domainUser.RoleResident, SiteCode: "SITE-A"}, "")
	assert.True(t, errors.IsForbiddenError(err))
}
