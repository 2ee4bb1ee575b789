package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/user/dto"
	"github.com/sitedesk/sitedesk/internal/application/user/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// ProfileHandler serves the locally mirrored resident and staff profiles
type ProfileHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	upsertProfileUC usecases.UpsertProfileExecutor
	listStaffUC     usecases.ListSiteStaffExecutor
	logger          logger.Interface
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	upsertProfileUC usecases.UpsertProfileExecutor,
	listStaffUC usecases.ListSiteStaffExecutor,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		upsertProfileUC: upsertProfileUC,
		listStaffUC:     listStaffUC,
		logger:          log,
	}
}

// GetProfile handles GET /resident/profile and GET /admin/profile
// @Summary Current profile
// @Description Returns the caller's profile, including the site and unit used for scoping
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/resident/profile [get]
// @Router /api/v1/admin/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertProfile handles PUT /admin/profiles
// @Summary Create or replace a profile
// @Description Mirrors a profile from the identity provider. Site admins may only manage their own site.
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpsertProfileRequest true "Profile"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/profiles [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if !common.BindJSON(c, &req) {
		h.logger.Warnw("invalid request body for upsert profile", "user_id", actor.UserID)
		return
	}

	result, err := h.upsertProfileUC.Execute(c.Request.Context(), actor, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile saved successfully", result)
}

// ListStaff handles GET /admin/staff
// @Summary List staff
// @Tags profile
// @Produce json
// @Security Bearer
// @Param site_code query string false "Site code (super admin only)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/staff [get]
func (h *ProfileHandler) ListStaff(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	result, err := h.listStaffUC.Execute(c.Request.Context(), actor, c.Query("site_code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
