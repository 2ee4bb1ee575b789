package dto

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type CategoryDTO struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	AllowedScope string    `json:"allowed_scope"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Code         string `json:"code" binding:"required,min=2,max=50"`
	Name         string `json:"name" binding:"required,notblank,max=100"`
	AllowedScope string `json:"allowed_scope" binding:"required,oneof=PRIVATE COMMON EMERGENCY"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	AllowedScope *string `json:"allowed_scope" binding:"omitempty,oneof=PRIVATE COMMON EMERGENCY"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type GuidanceTemplateDTO struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpsertGuidanceRequest struct {
	Title    string `json:"title" binding:"required,notblank,max=200"`
	Body     string `json:"body" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// NoticeDTO carries the Markdown source and its sanitized HTML rendering.
type NoticeDTO struct {
	ID          uint       `json:"id"`
	SiteCode    *string    `json:"site_code"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	BodyHTML    string     `json:"body_html"`
	IsPinned    bool       `json:"is_pinned"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedBy   uint       `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateNoticeRequest struct {
	SiteCode *string `json:"site_code" binding:"omitempty,max=50"`
	Title    string  `json:"title" binding:"required,notblank,max=200"`
	Body     string  `json:"body" binding:"required"`
	IsPinned bool    `json:"is_pinned"`
	Status   string  `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

type UpdateNoticeRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Body     *string `json:"body"`
	IsPinned *bool   `json:"is_pinned"`
	Status   *string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

type FAQDTO struct {
	ID           uint      `json:"id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateFAQRequest struct {
	Question     string `json:"question" binding:"required,notblank,max=500"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateFAQRequest struct {
	Question     *string `json:"question" binding:"omitempty,max=500"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type ListNoticesResult struct {
	Items    []*NoticeDTO `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

func ToCategoryDTO(c *catalog.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:           c.ID(),
		Code:         c.Code(),
		Name:         c.Name(),
		AllowedScope: c.AllowedScope().String(),
		IsActive:     c.IsActive(),
		DisplayOrder: c.DisplayOrder(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func ToCategoryDTOList(categories []*catalog.Category) []*CategoryDTO {
	out := mapper.MapSlice(categories, ToCategoryDTO)
	if out == nil {
		return []*CategoryDTO{}
	}
	return out
}

func ToGuidanceTemplateDTO(g *catalog.GuidanceTemplate) *GuidanceTemplateDTO {
	if g == nil {
		return nil
	}
	return &GuidanceTemplateDTO{
		ID:         g.ID(),
		CategoryID: g.CategoryID(),
		Title:      g.Title(),
		Body:       g.Body(),
		IsActive:   g.IsActive(),
		UpdatedAt:  g.UpdatedAt(),
	}
}

// ToNoticeDTO leaves BodyHTML empty; callers fill it with the rendered body.
func ToNoticeDTO(n *catalog.Notice) *NoticeDTO {
	if n == nil {
		return nil
	}
	return &NoticeDTO{
		ID:          n.ID(),
		SiteCode:    n.SiteCode(),
		Title:       n.Title(),
		Body:        n.Body(),
		IsPinned:    n.IsPinned(),
		Status:      n.Status().String(),
		PublishedAt: n.PublishedAt(),
		CreatedBy:   n.CreatedBy(),
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}
}

func ToFAQDTO(f *catalog.FAQ) *FAQDTO {
	if f == nil {
		return nil
	}
	return &FAQDTO{
		ID:           f.ID(),
		Question:     f.Question(),
		Answer:       f.Answer(),
		DisplayOrder: f.DisplayOrder(),
		IsActive:     f.IsActive(),
		UpdatedAt:    f.UpdatedAt(),
	}
}

func ToFAQDTOList(faqs []*catalog.FAQ) []*FAQDTO {
	out := mapper.MapSlice(faqs, ToFAQDTO)
	if out == nil {
		return []*FAQDTO{}
	}
	return out
}
