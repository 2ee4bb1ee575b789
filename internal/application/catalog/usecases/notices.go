package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/services/markdown"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

const maxNoticePageSize = 100

// noticePresenter renders notice bodies for responses. A body that fails to
// render is still returned with an empty body_html.
type noticePresenter struct {
	renderer markdown.Renderer
	logger   logger.Interface
}

func (p noticePresenter) present(n *catalog.Notice) *dto.NoticeDTO {
	out := dto.ToNoticeDTO(n)
	if out == nil || p.renderer == nil {
		return out
	}
	html, err := p.renderer.Render(n.Body())
	if err != nil {
		p.logger.Warnw("failed to render notice body", "id", n.ID(), "error", err)
		return out
	}
	out.BodyHTML = html
	return out
}

func (p noticePresenter) presentAll(notices []*catalog.Notice) []*dto.NoticeDTO {
	out := make([]*dto.NoticeDTO, 0, len(notices))
	for _, n := range notices {
		out = append(out, p.present(n))
	}
	return out
}

// canManageNotice reports whether actor may edit a notice addressed to siteCode.
// Global notices belong to super admins.
func canManageNotice(actor user.Actor, siteCode *string) bool {
	if actor.IsSuperAdmin() {
		return true
	}
	return siteCode != nil && actor.CanSeeSite(*siteCode)
}

type CreateNoticeUseCase struct {
	repo      catalog.NoticeRepository
	presenter noticePresenter
	logger    logger.Interface
}

func NewCreateNoticeUseCase(repo catalog.NoticeRepository, renderer markdown.Renderer, logger logger.Interface) *CreateNoticeUseCase {
	return &CreateNoticeUseCase{
		repo:      repo,
		presenter: noticePresenter{renderer: renderer, logger: logger},
		logger:    logger,
	}
}

func (uc *CreateNoticeUseCase) Execute(ctx context.Context, actor user.Actor, req dto.CreateNoticeRequest) (*dto.NoticeDTO, error) {
	uc.logger.Infow("executing create notice use case", "actor", actor.UserID)

	if !actor.IsStaff() {
		return nil, errors.NewForbiddenError("staff role required")
	}

	siteCode := req.SiteCode
	if siteCode != nil {
		code := utils.NormalizeCode(*siteCode)
		siteCode = &code
	}
	if !actor.IsSuperAdmin() {
		if siteCode != nil && *siteCode != "" && *siteCode != actor.SiteCode {
			return nil, errors.NewForbiddenError("notice site is outside the actor's site")
		}
		own := actor.SiteCode
		siteCode = &own
	}

	notice, err := catalog.NewNotice(siteCode, utils.NormalizeText(req.Title), req.Body, req.IsPinned, actor.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if catalog.NoticeStatus(req.Status) == catalog.NoticeStatusPublished {
		notice.Publish()
	}

	if err := uc.repo.Create(ctx, notice); err != nil {
		uc.logger.Errorw("failed to persist notice", "error", err)
		return nil, storageError(err, "failed to create notice")
	}

	uc.logger.Infow("notice created", "id", notice.ID(), "status", notice.Status())
	return uc.presenter.present(notice), nil
}

type UpdateNoticeUseCase struct {
	repo      catalog.NoticeRepository
	presenter noticePresenter
	logger    logger.Interface
}

func NewUpdateNoticeUseCase(repo catalog.NoticeRepository, renderer markdown.Renderer, logger logger.Interface) *UpdateNoticeUseCase {
	return &UpdateNoticeUseCase{
		repo:      repo,
		presenter: noticePresenter{renderer: renderer, logger: logger},
		logger:    logger,
	}
}

func (uc *UpdateNoticeUseCase) Execute(ctx context.Context, actor user.Actor, id uint, req dto.UpdateNoticeRequest) (*dto.NoticeDTO, error) {
	uc.logger.Infow("executing update notice use case", "id", id, "actor", actor.UserID)

	notice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load notice", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update notice")
	}
	if notice == nil || !canManageNotice(actor, notice.SiteCode()) {
		return nil, errors.NewNotFoundError("notice not found")
	}

	if req.Title != nil || req.Body != nil {
		title, body := notice.Title(), notice.Body()
		if req.Title != nil {
			title = utils.NormalizeText(*req.Title)
		}
		if req.Body != nil {
			body = *req.Body
		}
		if err := notice.Edit(title, body); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if req.IsPinned != nil {
		notice.SetPinned(*req.IsPinned)
	}
	if req.Status != nil {
		switch catalog.NoticeStatus(*req.Status) {
		case catalog.NoticeStatusPublished:
			notice.Publish()
		case catalog.NoticeStatusDraft:
			notice.Unpublish()
		default:
			return nil, errors.NewValidationError("invalid notice status: " + *req.Status)
		}
	}

	if err := uc.repo.Update(ctx, notice); err != nil {
		uc.logger.Errorw("failed to update notice", "id", id, "error", err)
		return nil, storageError(err, "failed to update notice")
	}
	return uc.presenter.present(notice), nil
}

type ListNoticesQuery struct {
	SiteCode string
	Page     int
	PageSize int
}

// ListPublicNoticesUseCase lists published notices, pinned first.
type ListPublicNoticesUseCase struct {
	repo      catalog.NoticeRepository
	presenter noticePresenter
	logger    logger.Interface
}

func NewListPublicNoticesUseCase(repo catalog.NoticeRepository, renderer markdown.Renderer, logger logger.Interface) *ListPublicNoticesUseCase {
	return &ListPublicNoticesUseCase{
		repo:      repo,
		presenter: noticePresenter{renderer: renderer, logger: logger},
		logger:    logger,
	}
}

func (uc *ListPublicNoticesUseCase) Execute(ctx context.Context, query ListNoticesQuery) (*dto.ListNoticesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize, maxNoticePageSize)

	notices, total, err := uc.repo.ListPublished(ctx, utils.NormalizeCode(query.SiteCode), pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notices", "error", err)
		return nil, errors.NewInternalError("failed to list notices")
	}
	return &dto.ListNoticesResult{
		Items:    uc.presenter.presentAll(notices),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

// ListAdminNoticesUseCase lists drafts and published notices of the actor's site.
type ListAdminNoticesUseCase struct {
	repo      catalog.NoticeRepository
	presenter noticePresenter
	logger    logger.Interface
}

func NewListAdminNoticesUseCase(repo catalog.NoticeRepository, renderer markdown.Renderer, logger logger.Interface) *ListAdminNoticesUseCase {
	return &ListAdminNoticesUseCase{
		repo:      repo,
		presenter: noticePresenter{renderer: renderer, logger: logger},
		logger:    logger,
	}
}

func (uc *ListAdminNoticesUseCase) Execute(ctx context.Context, actor user.Actor, query ListNoticesQuery) (*dto.ListNoticesResult, error) {
	if !actor.IsStaff() {
		return nil, errors.NewForbiddenError("staff role required")
	}
	pagination := utils.ValidatePagination(query.Page, query.PageSize, maxNoticePageSize)
	siteCode := actor.SiteFilter(utils.NormalizeCode(query.SiteCode))

	notices, total, err := uc.repo.ListAll(ctx, siteCode, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notices", "error", err)
		return nil, errors.NewInternalError("failed to list notices")
	}
	return &dto.ListNoticesResult{
		Items:    uc.presenter.presentAll(notices),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
