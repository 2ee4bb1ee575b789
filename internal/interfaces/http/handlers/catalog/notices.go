package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/application/catalog/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// ListPublicNotices handles GET /public/notices
// @Summary Published notices
// @Tags notices
// @Produce json
// @Param site_code query string false "Site code"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/public/notices [get]
func (h *Handler) ListPublicNotices(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listPublicNoticesUC.Execute(c.Request.Context(), usecases.ListNoticesQuery{
		SiteCode: c.Query("site_code"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListAdminNotices handles GET /admin/notices, drafts included.
// @Summary List notices
// @Description Drafts included
// @Tags notices
// @Produce json
// @Security Bearer
// @Param site_code query string false "Site code"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/notices [get]
func (h *Handler) ListAdminNotices(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listAdminNoticesUC.Execute(c.Request.Context(), actor, usecases.ListNoticesQuery{
		SiteCode: c.Query("site_code"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CreateNotice handles POST /admin/notices
// @Summary Create a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateNoticeRequest true "Notice"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/notices [post]
func (h *Handler) CreateNotice(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.createNoticeUC.Execute(c.Request.Context(), actor, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notice created successfully")
}

// UpdateNotice handles PATCH /admin/notices/:id
// @Summary Update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Notice fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/notices/{id} [patch]
func (h *Handler) UpdateNotice(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateNoticeRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.updateNoticeUC.Execute(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notice updated successfully", result)
}

// ListPublicFAQs handles GET /public/faqs
// @Summary Active FAQs
// @Tags faqs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/public/faqs [get]
func (h *Handler) ListPublicFAQs(c *gin.Context) {
	h.listFAQs(c, true)
}

// ListFAQs handles GET /admin/faqs
// @Summary List FAQs
// @Tags faqs
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/faqs [get]
func (h *Handler) ListFAQs(c *gin.Context) {
	h.listFAQs(c, common.QueryBool(c, "active", false))
}

func (h *Handler) listFAQs(c *gin.Context, activeOnly bool) {
	result, err := h.listFAQsUC.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateFAQ handles POST /admin/faqs
// @Summary Create an FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateFAQRequest true "FAQ"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/faqs [post]
func (h *Handler) CreateFAQ(c *gin.Context) {
	var req dto.CreateFAQRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.createFAQUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "FAQ created successfully")
}

// UpdateFAQ handles PATCH /admin/faqs/:id
// @Summary Update an FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "FAQ ID"
// @Param request body dto.UpdateFAQRequest true "FAQ fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/faqs/{id} [patch]
func (h *Handler) UpdateFAQ(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateFAQRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.updateFAQUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ updated successfully", result)
}
