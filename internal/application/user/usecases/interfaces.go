package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/user/dto"
	domainUser "github.com/sitedesk/sitedesk/internal/domain/user"
)

type ResolveActorExecutor interface {
	Execute(ctx context.Context, userID uint, role domainUser.Role) (domainUser.Actor, error)
}

type UpsertProfileExecutor interface {
	Execute(ctx context.Context, actor domainUser.Actor, req dto.UpsertProfileRequest) (*dto.UserResponse, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, actor domainUser.Actor) (*dto.UserResponse, error)
}

type ListSiteStaffExecutor interface {
	Execute(ctx context.Context, actor domainUser.Actor, siteCode string) ([]*dto.UserResponse, error)
}
