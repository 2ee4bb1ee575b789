// Package catalog serves the complaint categories, guidance templates,
// notices and FAQs.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/application/catalog/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type Handler struct {
	createCategoryUC    usecases.CreateCategoryExecutor
	updateCategoryUC    usecases.UpdateCategoryExecutor
	listCategoriesUC    usecases.ListCategoriesExecutor
	upsertGuidanceUC    usecases.UpsertGuidanceExecutor
	getGuidanceUC       usecases.GetGuidanceExecutor
	createNoticeUC      usecases.CreateNoticeExecutor
	updateNoticeUC      usecases.UpdateNoticeExecutor
	listPublicNoticesUC usecases.ListPublicNoticesExecutor
	listAdminNoticesUC  usecases.ListAdminNoticesExecutor
	createFAQUC         usecases.CreateFAQExecutor
	updateFAQUC         usecases.UpdateFAQExecutor
	listFAQsUC          usecases.ListFAQsExecutor
	logger              logger.Interface
}

type Deps struct {
	CreateCategory    usecases.CreateCategoryExecutor
	UpdateCategory    usecases.UpdateCategoryExecutor
	ListCategories    usecases.ListCategoriesExecutor
	UpsertGuidance    usecases.UpsertGuidanceExecutor
	GetGuidance       usecases.GetGuidanceExecutor
	CreateNotice      usecases.CreateNoticeExecutor
	UpdateNotice      usecases.UpdateNoticeExecutor
	ListPublicNotices usecases.ListPublicNoticesExecutor
	ListAdminNotices  usecases.ListAdminNoticesExecutor
	CreateFAQ         usecases.CreateFAQExecutor
	UpdateFAQ         usecases.UpdateFAQExecutor
	ListFAQs          usecases.ListFAQsExecutor
}

func NewHandler(deps Deps, log logger.Interface) *Handler {
	return &Handler{
		createCategoryUC:    deps.CreateCategory,
		updateCategoryUC:    deps.UpdateCategory,
		listCategoriesUC:    deps.ListCategories,
		upsertGuidanceUC:    deps.UpsertGuidance,
		getGuidanceUC:       deps.GetGuidance,
		createNoticeUC:      deps.CreateNotice,
		updateNoticeUC:      deps.UpdateNotice,
		listPublicNoticesUC: deps.ListPublicNotices,
		listAdminNoticesUC:  deps.ListAdminNotices,
		createFAQUC:         deps.CreateFAQ,
		updateFAQUC:         deps.UpdateFAQ,
		listFAQsUC:          deps.ListFAQs,
		logger:              log,
	}
}

// ListPublicCategories handles GET /public/categories
// @Summary Active complaint categories
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/public/categories [get]
func (h *Handler) ListPublicCategories(c *gin.Context) {
	h.listCategories(c, true)
}

// ListCategories handles GET /admin/categories. Inactive categories are
// included unless active=true is passed.
// @Summary List categories
// @Description Includes inactive categories
// @Tags catalog
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	h.listCategories(c, common.QueryBool(c, "active", false))
}

func (h *Handler) listCategories(c *gin.Context, activeOnly bool) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCategory handles POST /admin/categories
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// UpdateCategory handles PATCH /admin/categories/:id
// @Summary Update a category
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/categories/{id} [patch]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// GetGuidance handles GET /admin/categories/:id/guidance
// @Summary Get category guidance
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/categories/{id}/guidance [get]
func (h *Handler) GetGuidance(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getGuidanceUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertGuidance handles PUT /admin/categories/:id/guidance
// @Summary Set category guidance
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Param request body dto.UpsertGuidanceRequest true "Guidance"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/categories/{id}/guidance [put]
func (h *Handler) UpsertGuidance(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpsertGuidanceRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.upsertGuidanceUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guidance template saved successfully", result)
}
