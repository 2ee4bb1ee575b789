// Package complaint exposes the complaint lifecycle over HTTP for residents
// and site staff.
package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/complaint/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type Handler struct {
	submitUC         usecases.SubmitComplaintExecutor
	triageUC         usecases.TriageComplaintExecutor
	assignUC         usecases.AssignComplaintExecutor
	closeUC          usecases.CloseComplaintExecutor
	getUC            usecases.GetComplaintExecutor
	listUC           usecases.ListComplaintsExecutor
	timelineUC       usecases.GetTimelineExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	statsUC          usecases.GetStatsExecutor
	listWorkOrdersUC usecases.ListWorkOrdersExecutor
	patchWorkOrderUC usecases.PatchWorkOrderExecutor
	createVisitUC    usecases.CreateVisitExecutor
	checkoutVisitUC  usecases.CheckoutVisitExecutor
	logger           logger.Interface
}

// Deps groups the use cases the handler serves.
type Deps struct {
	Submit         usecases.SubmitComplaintExecutor
	Triage         usecases.TriageComplaintExecutor
	Assign         usecases.AssignComplaintExecutor
	Close          usecases.CloseComplaintExecutor
	Get            usecases.GetComplaintExecutor
	List           usecases.ListComplaintsExecutor
	Timeline       usecases.GetTimelineExecutor
	AddComment     usecases.AddCommentExecutor
	ListComments   usecases.ListCommentsExecutor
	Stats          usecases.GetStatsExecutor
	ListWorkOrders usecases.ListWorkOrdersExecutor
	PatchWorkOrder usecases.PatchWorkOrderExecutor
	CreateVisit    usecases.CreateVisitExecutor
	CheckoutVisit  usecases.CheckoutVisitExecutor
}

func NewHandler(deps Deps, log logger.Interface) *Handler {
	return &Handler{
		submitUC:         deps.Submit,
		triageUC:         deps.Triage,
		assignUC:         deps.Assign,
		closeUC:          deps.Close,
		getUC:            deps.Get,
		listUC:           deps.List,
		timelineUC:       deps.Timeline,
		addCommentUC:     deps.AddComment,
		listCommentsUC:   deps.ListComments,
		statsUC:          deps.Stats,
		listWorkOrdersUC: deps.ListWorkOrders,
		patchWorkOrderUC: deps.PatchWorkOrder,
		createVisitUC:    deps.CreateVisit,
		checkoutVisitUC:  deps.CheckoutVisit,
		logger:           log,
	}
}

// Submit handles POST /resident/complaints
// @Summary Submit a complaint
// @Description Creates a complaint for the caller's unit. PRIVATE complaints are answered with guidance immediately.
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SubmitComplaintRequest true "Complaint"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /api/v1/resident/complaints [post]
func (h *Handler) Submit(c *gin.Context) {
	h.submit(c, false)
}

// SubmitEmergency handles POST /resident/emergencies. The scope is forced to
// EMERGENCY whatever the body says.
// @Summary Report an emergency
// @Description Submits a complaint with EMERGENCY scope and URGENT priority whatever the body says
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SubmitComplaintRequest true "Complaint"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/resident/emergencies [post]
func (h *Handler) SubmitEmergency(c *gin.Context) {
	h.submit(c, true)
}

func (h *Handler) submit(c *gin.Context, emergency bool) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	var req SubmitComplaintRequest
	if !common.BindJSON(c, &req) {
		h.logger.Warnw("invalid request body for submit complaint", "user_id", actor.UserID)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(actor, emergency))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// List handles GET /resident/complaints and GET /admin/complaints
// @Summary List complaints
// @Description Residents see their own complaints. Staff see their site, super admins may filter by site.
// @Tags complaints
// @Produce json
// @Security Bearer
// @Param site_code query string false "Site code (super admin only)"
// @Param status query string false "Status filter"
// @Param scope query string false "Scope filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/resident/complaints [get]
// @Router /api/v1/admin/complaints [get]
func (h *Handler) List(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListComplaintsQuery{
		Actor:    actor,
		SiteCode: c.Query("site_code"),
		Status:   c.Query("status"),
		Scope:    c.Query("scope"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, result.Page, result.PageSize)
}

// Get handles GET /complaints/:id
// @Summary Get a complaint
// @Description Returns the complaint with its work orders, visits and visible comments
// @Tags complaints
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/resident/complaints/{id} [get]
// @Router /api/v1/admin/complaints/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{Actor: actor, ComplaintID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Timeline handles GET /complaints/:id/timeline
// @Summary Complaint timeline
// @Tags complaints
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/resident/complaints/{id}/timeline [get]
// @Router /api/v1/admin/complaints/{id}/timeline [get]
func (h *Handler) Timeline(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.timelineUC.Execute(c.Request.Context(), usecases.GetTimelineQuery{Actor: actor, ComplaintID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComments handles GET /complaints/:id/comments
// @Summary List comments
// @Description Internal comments are hidden from residents
// @Tags complaints
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/resident/complaints/{id}/comments [get]
// @Router /api/v1/admin/complaints/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{Actor: actor, ComplaintID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /complaints/:id/comments. The use case forces
// is_internal off for residents.
// @Summary Add a comment
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Param request body AddCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/resident/complaints/{id}/comments [post]
// @Router /api/v1/admin/complaints/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:       actor,
		ComplaintID: id,
		Text:        req.Comment,
		IsInternal:  req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// Triage handles POST /admin/complaints/:id/triage
// @Summary Triage a complaint
// @Description Sets scope and priority. Switching to PRIVATE resolves the complaint with guidance.
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Param request body TriageComplaintRequest true "Triage decision"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/admin/complaints/{id}/triage [post]
func (h *Handler) Triage(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TriageComplaintRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.triageUC.Execute(c.Request.Context(), usecases.TriageComplaintCommand{
		Actor:          actor,
		ComplaintID:    id,
		Scope:          req.Scope,
		Priority:       req.Priority,
		ResolutionType: req.ResolutionType,
		RequiresVisit:  req.RequiresVisit,
		VisitReason:    req.VisitReason,
		Note:           req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint triaged successfully", result)
}

// Assign handles POST /admin/complaints/:id/assign
// @Summary Assign a complaint
// @Description Assigns a staff member and opens a work order
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Param request body AssignComplaintRequest true "Assignee"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /api/v1/admin/complaints/{id}/assign [post]
func (h *Handler) Assign(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignComplaintCommand{
		Actor:          actor,
		ComplaintID:    id,
		AssigneeUserID: req.AssigneeUserID,
		ScheduledAt:    req.ScheduledAt,
		Note:           req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint assigned successfully")
}

// Close handles POST /admin/complaints/:id/close
// @Summary Close a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Param request body CloseComplaintRequest true "Closing note"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/admin/complaints/{id}/close [post]
func (h *Handler) Close(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseComplaintRequest
	if !common.BindOptionalJSON(c, &req) {
		return
	}

	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseComplaintCommand{
		Actor:       actor,
		ComplaintID: id,
		Note:        req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint closed successfully", result)
}

// Stats handles GET /admin/stats
// @Summary Complaint statistics
// @Description Counts by status and scope, delayed complaints and average resolution hours
// @Tags complaints
// @Produce json
// @Security Bearer
// @Param site_code query string false "Site code (super admin only)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}

	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetStatsQuery{
		Actor:    actor,
		SiteCode: c.Query("site_code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
