// Package notification exposes the notification queue and its templates.
// The internal endpoints form the delivery contract used by external
// workers: claim pending entries, then report each outcome.
package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type Handler struct {
	claimUC          usecases.ClaimNotificationsExecutor
	reportUC         usecases.ReportDeliveryExecutor
	listQueueUC      usecases.ListQueueExecutor
	requeueUC        usecases.RequeueFailedExecutor
	upsertTemplateUC usecases.UpsertTemplateExecutor
	listTemplatesUC  usecases.ListTemplatesExecutor
	logger           logger.Interface
}

type Deps struct {
	Claim          usecases.ClaimNotificationsExecutor
	Report         usecases.ReportDeliveryExecutor
	ListQueue      usecases.ListQueueExecutor
	Requeue        usecases.RequeueFailedExecutor
	UpsertTemplate usecases.UpsertTemplateExecutor
	ListTemplates  usecases.ListTemplatesExecutor
}

func NewHandler(deps Deps, log logger.Interface) *Handler {
	return &Handler{
		claimUC:          deps.Claim,
		reportUC:         deps.Report,
		listQueueUC:      deps.ListQueue,
		requeueUC:        deps.Requeue,
		upsertTemplateUC: deps.UpsertTemplate,
		listTemplatesUC:  deps.ListTemplates,
		logger:           log,
	}
}

// RequeueResponse reports how many failed entries went back to PENDING.
type RequeueResponse struct {
	Requeued int64 `json:"requeued"`
}

// Claim handles POST /internal/notifications/claim
// @Summary Claim pending notifications
// @Description Leases a batch of due queue entries to the caller
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ClaimRequest true "Batch size"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/internal/notifications/claim [post]
func (h *Handler) Claim(c *gin.Context) {
	var req dto.ClaimRequest
	if !common.BindOptionalJSON(c, &req) {
		return
	}

	result, err := h.claimUC.Execute(c.Request.Context(), req.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Report handles POST /internal/notifications/:id/report
// @Summary Report a delivery
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Queue entry ID"
// @Param request body dto.DeliveryReport true "Delivery outcome"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/internal/notifications/{id}/report [post]
func (h *Handler) Report(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.DeliveryReport
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.reportUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery recorded", result)
}

// Requeue handles POST /internal/notifications/requeue and
// POST /admin/notifications/requeue
// @Summary Requeue expired leases
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/internal/notifications/requeue [post]
// @Router /api/v1/admin/notifications/requeue [post]
func (h *Handler) Requeue(c *gin.Context) {
	n, err := h.requeueUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", RequeueResponse{Requeued: n})
}

// ListQueue handles GET /admin/notifications
// @Summary List the notification queue
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param event_key query string false "Event key filter"
// @Param complaint_id query int false "Complaint ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/notifications [get]
func (h *Handler) ListQueue(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.ListQueueQuery{
		Status:   c.Query("status"),
		EventKey: c.Query("event_key"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if raw := c.Query("complaint_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid complaint_id", raw))
			return
		}
		complaintID := uint(id)
		query.ComplaintID = &complaintID
	}

	result, err := h.listQueueUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}

// ListTemplates handles GET /admin/notification-templates
// @Summary List notification templates
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/notification-templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	result, err := h.listTemplatesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertTemplate handles PUT /admin/notification-templates
// @Summary Create or replace a template
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpsertTemplateRequest true "Template"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/admin/notification-templates [put]
func (h *Handler) UpsertTemplate(c *gin.Context) {
	var req dto.UpsertTemplateRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.upsertTemplateUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification template saved successfully", result)
}
