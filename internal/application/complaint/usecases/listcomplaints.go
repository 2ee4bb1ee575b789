package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type ListComplaintsQuery struct {
	Actor    user.Actor
	SiteCode string
	Status   string
	Scope    string
	Page     int
	PageSize int
}

type ListComplaintsResult struct {
	Complaints []*dto.ComplaintDTO `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	cfg           config.ComplaintConfig
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	cfg config.ComplaintConfig,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		cfg:           cfg,
		logger:        logger,
	}
}

// Execute lists complaints newest first. Residents only ever see their own
// complaints; staff are pinned to their site unless they are super admins.
func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	uc.logger.Debugw("executing list complaints use case",
		"user_id", query.Actor.UserID,
		"role", query.Actor.Role.String(),
		"status", query.Status,
		"scope", query.Scope)

	status, err := parseOptionalStatus(query.Status)
	if err != nil {
		return nil, err
	}
	scope, err := parseOptionalScope(query.Scope)
	if err != nil {
		return nil, err
	}

	maxPageSize := uc.cfg.AdminMaxPageSize
	filter := complaint.ListFilter{
		Status: status,
		Scope:  scope,
	}
	if query.Actor.IsResident() {
		maxPageSize = uc.cfg.ResidentMaxPageSize
		reporter := query.Actor.UserID
		filter.ReporterUserID = &reporter
		filter.SiteCode = query.Actor.SiteCode
	} else {
		filter.SiteCode = query.Actor.SiteFilter(query.SiteCode)
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize, maxPageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, storageError(err, "failed to list complaints")
	}

	return &ListComplaintsResult{
		Complaints: dto.ToComplaintDTOList(complaints),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}, nil
}
