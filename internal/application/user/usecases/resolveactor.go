package usecases

import (
	"context"

	domainUser "github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// ResolveActorUseCase turns a verified (user ID, role) pair into the actor a
// request runs as. Site and unit come from the stored profile only.
type ResolveActorUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

// NewResolveActorUseCase creates a new resolve actor use case
func NewResolveActorUseCase(userRepo domainUser.Repository, logger logger.Interface) *ResolveActorUseCase {
	return &ResolveActorUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ResolveActorUseCase) Execute(ctx context.Context, userID uint, role domainUser.Role) (domainUser.Actor, error) {
	if userID == 0 {
		return domainUser.Actor{}, errors.NewUnauthorizedError("token subject is missing")
	}

	profile, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return domainUser.Actor{}, errors.NewInternalError("failed to resolve user")
	}
	if profile == nil {
		uc.logger.Warnw("token for unknown profile", "user_id", userID)
		return domainUser.Actor{}, errors.NewUnauthorizedError("unknown user")
	}
	if !profile.IsActive() {
		return domainUser.Actor{}, errors.NewUnauthorizedError("user is inactive")
	}
	// A stale token must not keep a role the profile no longer has.
	if profile.Role() != role {
		uc.logger.Warnw("token role does not match profile",
			"user_id", userID,
			"token_role", role,
			"profile_role", profile.Role())
		return domainUser.Actor{}, errors.NewUnauthorizedError("role mismatch")
	}

	return profile.Actor(), nil
}
