package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type GetStatsQuery struct {
	Actor    user.Actor
	SiteCode string
}

type GetStatsUseCase struct {
	complaintRepo complaint.Repository
	cfg           config.ComplaintConfig
	logger        logger.Interface
}

func NewGetStatsUseCase(
	complaintRepo complaint.Repository,
	cfg config.ComplaintConfig,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		complaintRepo: complaintRepo,
		cfg:           cfg,
		logger:        logger,
	}
}

// Execute aggregates the actor's site, or the requested site (all sites when
// empty) for super admins. An empty site yields zero counts and a nil
// average.
func (uc *GetStatsUseCase) Execute(ctx context.Context, query GetStatsQuery) (*dto.StatsDTO, error) {
	if err := requireStaff(query.Actor); err != nil {
		uc.logger.Warnw("non-staff stats attempt", "user_id", query.Actor.UserID)
		return nil, err
	}

	siteCode := query.Actor.SiteFilter(query.SiteCode)
	uc.logger.Debugw("executing get stats use case", "site_code", siteCode)

	stats, err := uc.complaintRepo.Stats(ctx, complaint.StatsFilter{
		SiteCode:      siteCode,
		DelayedBefore: biztime.NowUTC().Add(-uc.cfg.SLA()),
	})
	if err != nil {
		uc.logger.Errorw("failed to compute complaint stats", "error", err, "site_code", siteCode)
		return nil, storageError(err, "failed to compute stats")
	}
	return dto.ToStatsDTO(siteCode, stats), nil
}
