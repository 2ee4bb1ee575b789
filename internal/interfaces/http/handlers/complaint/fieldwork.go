package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/application/complaint/usecases"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/common"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// ListWorkOrders handles GET /admin/complaints/:id/work-orders
// @Summary List work orders
// @Tags fieldwork
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/complaints/{id}/work-orders [get]
func (h *Handler) ListWorkOrders(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listWorkOrdersUC.Execute(c.Request.Context(), usecases.ListWorkOrdersQuery{Actor: actor, ComplaintID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PatchWorkOrder handles PATCH /admin/work-orders/:id
// @Summary Update a work order
// @Description Moves the work order and cascades the complaint status
// @Tags fieldwork
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Work order ID"
// @Param request body PatchWorkOrderRequest true "Work order update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/admin/work-orders/{id} [patch]
func (h *Handler) PatchWorkOrder(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PatchWorkOrderRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.patchWorkOrderUC.Execute(c.Request.Context(), usecases.PatchWorkOrderCommand{
		Actor:       actor,
		WorkOrderID: id,
		Status:      req.Status,
		ResultNote:  req.ResultNote,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order updated successfully", result)
}

// CreateVisit handles POST /admin/complaints/:id/visits
// @Summary Log a visit
// @Tags fieldwork
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Complaint ID"
// @Param request body CreateVisitRequest true "Visit"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/complaints/{id}/visits [post]
func (h *Handler) CreateVisit(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateVisitRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.createVisitUC.Execute(c.Request.Context(), usecases.CreateVisitCommand{
		Actor:         actor,
		ComplaintID:   id,
		VisitorUserID: req.VisitorUserID,
		VisitReason:   req.VisitReason,
		ResultNote:    req.ResultNote,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Visit logged successfully")
}

// CheckoutVisit handles PATCH /admin/visits/:id/checkout
// @Summary Check out a visit
// @Description Repeated checkouts return the visit unchanged
// @Tags fieldwork
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Visit ID"
// @Param request body CheckoutVisitRequest true "Checkout"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/admin/visits/{id}/checkout [patch]
func (h *Handler) CheckoutVisit(c *gin.Context) {
	actor, ok := common.Actor(c)
	if !ok {
		return
	}
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckoutVisitRequest
	if !common.BindOptionalJSON(c, &req) {
		return
	}

	result, err := h.checkoutVisitUC.Execute(c.Request.Context(), usecases.CheckoutVisitCommand{
		Actor:      actor,
		VisitID:    id,
		ResultNote: req.ResultNote,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visit checked out successfully", result)
}
