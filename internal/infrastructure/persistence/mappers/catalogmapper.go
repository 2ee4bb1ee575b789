package mappers

import (
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// CatalogMapper converts policy catalog entities: categories, guidance
// templates, notices and FAQs.
type CatalogMapper interface {
	CategoryToModel(c *catalog.Category) *models.CategoryModel
	CategoryToDomain(model *models.CategoryModel) (*catalog.Category, error)

	GuidanceToModel(g *catalog.GuidanceTemplate) *models.GuidanceTemplateModel
	GuidanceToDomain(model *models.GuidanceTemplateModel) *catalog.GuidanceTemplate

	NoticeToModel(n *catalog.Notice) *models.NoticeModel
	NoticeToDomain(model *models.NoticeModel) (*catalog.Notice, error)

	FAQToModel(f *catalog.FAQ) *models.FAQModel
	FAQToDomain(model *models.FAQModel) *catalog.FAQ
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) CategoryToModel(c *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:           c.ID(),
		Code:         c.Code(),
		Name:         c.Name(),
		AllowedScope: c.AllowedScope().String(),
		IsActive:     c.IsActive(),
		DisplayOrder: c.DisplayOrder(),
		CreatedAt:    biztime.ToMillis(c.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(c.UpdatedAt()),
	}
}

func (m *CatalogMapperImpl) CategoryToDomain(model *models.CategoryModel) (*catalog.Category, error) {
	return catalog.ReconstructCategory(
		model.ID,
		model.Code,
		model.Name,
		vo.Scope(model.AllowedScope),
		model.IsActive,
		model.DisplayOrder,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) GuidanceToModel(g *catalog.GuidanceTemplate) *models.GuidanceTemplateModel {
	return &models.GuidanceTemplateModel{
		ID:         g.ID(),
		CategoryID: g.CategoryID(),
		Title:      g.Title(),
		Body:       g.Body(),
		IsActive:   g.IsActive(),
		CreatedAt:  biztime.ToMillis(g.CreatedAt()),
		UpdatedAt:  biztime.ToMillis(g.UpdatedAt()),
	}
}

func (m *CatalogMapperImpl) GuidanceToDomain(model *models.GuidanceTemplateModel) *catalog.GuidanceTemplate {
	return catalog.ReconstructGuidanceTemplate(
		model.ID,
		model.CategoryID,
		model.Title,
		model.Body,
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) NoticeToModel(n *catalog.Notice) *models.NoticeModel {
	return &models.NoticeModel{
		ID:          n.ID(),
		SiteCode:    n.SiteCode(),
		Title:       n.Title(),
		Body:        n.Body(),
		IsPinned:    n.IsPinned(),
		Status:      n.Status().String(),
		PublishedAt: biztime.ToMillisPtr(n.PublishedAt()),
		CreatedBy:   n.CreatedBy(),
		CreatedAt:   biztime.ToMillis(n.CreatedAt()),
		UpdatedAt:   biztime.ToMillis(n.UpdatedAt()),
	}
}

func (m *CatalogMapperImpl) NoticeToDomain(model *models.NoticeModel) (*catalog.Notice, error) {
	return catalog.ReconstructNotice(
		model.ID,
		model.SiteCode,
		model.Title,
		model.Body,
		model.IsPinned,
		catalog.NoticeStatus(model.Status),
		biztime.FromMillisPtr(model.PublishedAt),
		model.CreatedBy,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) FAQToModel(f *catalog.FAQ) *models.FAQModel {
	return &models.FAQModel{
		ID:           f.ID(),
		Question:     f.Question(),
		Answer:       f.Answer(),
		DisplayOrder: f.DisplayOrder(),
		IsActive:     f.IsActive(),
		CreatedAt:    biztime.ToMillis(f.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(f.UpdatedAt()),
	}
}

func (m *CatalogMapperImpl) FAQToDomain(model *models.FAQModel) *catalog.FAQ {
	return catalog.ReconstructFAQ(
		model.ID,
		model.Question,
		model.Answer,
		model.DisplayOrder,
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
