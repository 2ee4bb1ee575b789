package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/user"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, activeOnly bool) ([]*dto.CategoryDTO, error)
}

type UpsertGuidanceExecutor interface {
	Execute(ctx context.Context, categoryID uint, req dto.UpsertGuidanceRequest) (*dto.GuidanceTemplateDTO, error)
}

type GetGuidanceExecutor interface {
	Execute(ctx context.Context, categoryID uint) (*dto.GuidanceTemplateDTO, error)
}

type CreateNoticeExecutor interface {
	Execute(ctx context.Context, actor user.Actor, req dto.CreateNoticeRequest) (*dto.NoticeDTO, error)
}

type UpdateNoticeExecutor interface {
	Execute(ctx context.Context, actor user.Actor, id uint, req dto.UpdateNoticeRequest) (*dto.NoticeDTO, error)
}

type ListPublicNoticesExecutor interface {
	Execute(ctx context.Context, query ListNoticesQuery) (*dto.ListNoticesResult, error)
}

type ListAdminNoticesExecutor interface {
	Execute(ctx context.Context, actor user.Actor, query ListNoticesQuery) (*dto.ListNoticesResult, error)
}

type CreateFAQExecutor interface {
	Execute(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQDTO, error)
}

type UpdateFAQExecutor interface {
	Execute(ctx context.Context, id uint, req dto.UpdateFAQRequest) (*dto.FAQDTO, error)
}

type ListFAQsExecutor interface {
	Execute(ctx context.Context, activeOnly bool) ([]*dto.FAQDTO, error)
}

type SeedCatalogExecutor interface {
	Execute(ctx context.Context, doc dto.SeedDocument) (*dto.SeedResult, error)
}
