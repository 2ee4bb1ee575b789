package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/user/dto"
	domainUser "github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// UpsertProfileUseCase mirrors a resident or staff profile locally. Site
// admins manage profiles of their own site and cannot grant SUPER_ADMIN.
type UpsertProfileUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewUpsertProfileUseCase(userRepo domainUser.Repository, logger logger.Interface) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpsertProfileUseCase) Execute(ctx context.Context, actor domainUser.Actor, req dto.UpsertProfileRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing upsert profile use case", "id", req.ID, "actor", actor.UserID)

	if req.ID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	role, err := domainUser.NewRole(req.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	siteCode := utils.NormalizeCode(req.SiteCode)

	if !actor.IsSuperAdmin() {
		if actor.Role != domainUser.RoleAdmin {
			return nil, errors.NewForbiddenError("admin role required")
		}
		if role == domainUser.RoleSuperAdmin {
			return nil, errors.NewForbiddenError("cannot grant super admin")
		}
		if !actor.CanSeeSite(siteCode) {
			return nil, errors.NewForbiddenError("profile site is outside the actor's site")
		}
	}

	existing, err := uc.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "id", req.ID, "error", err)
		return nil, errors.NewInternalError("failed to save profile")
	}
	if existing != nil && !actor.CanSeeSite(existing.SiteCode()) {
		return nil, errors.NewForbiddenError("profile belongs to another site")
	}

	profile, err := domainUser.NewUser(
		role,
		utils.NormalizeText(req.DisplayName),
		req.Email,
		req.Phone,
		siteCode,
		utils.NormalizeText(req.SiteName),
		utils.NormalizeText(req.UnitLabel),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := profile.SetID(req.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.IsActive != nil {
		profile.SetActive(*req.IsActive)
	}

	if err := uc.userRepo.Upsert(ctx, profile); err != nil {
		uc.logger.Errorw("failed to persist profile", "id", req.ID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save profile")
	}

	uc.logger.Infow("profile saved", "id", profile.ID(), "role", role, "site", siteCode)
	return dto.ToUserResponse(profile), nil
}

// GetProfileUseCase returns the caller's own profile.
type GetProfileUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, actor domainUser.Actor) (*dto.UserResponse, error) {
	profile, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get profile", "id", actor.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get profile")
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserResponse(profile), nil
}

// ListSiteStaffUseCase lists the assignable staff of a site.
type ListSiteStaffUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewListSiteStaffUseCase(userRepo domainUser.Repository, logger logger.Interface) *ListSiteStaffUseCase {
	return &ListSiteStaffUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListSiteStaffUseCase) Execute(ctx context.Context, actor domainUser.Actor, siteCode string) ([]*dto.UserResponse, error) {
	if !actor.IsStaff() {
		return nil, errors.NewForbiddenError("staff role required")
	}
	site := actor.SiteFilter(utils.NormalizeCode(siteCode))
	if site == "" {
		return nil, errors.NewValidationError("site_code is required")
	}

	staff, err := uc.userRepo.ListStaffBySite(ctx, site)
	if err != nil {
		uc.logger.Errorw("failed to list site staff", "site", site, "error", err)
		return nil, errors.NewInternalError("failed to list staff")
	}
	return dto.ToUserResponseList(staff), nil
}
