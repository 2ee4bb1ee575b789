package http

import (
	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers"
	cataloghandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/catalog"
	complainthandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/complaint"
	notificationhandlers "github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/notification"
)

// allHandlers holds every HTTP handler registered by the router.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	profileHandler      *handlers.ProfileHandler
	complaintHandler    *complainthandlers.Handler
	catalogHandler      *cataloghandlers.Handler
	notificationHandler *notificationhandlers.Handler
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		healthHandler:  handlers.NewHealthHandler(c.sqlDB, log),
		profileHandler: handlers.NewProfileHandler(ucs.getProfileUC, ucs.upsertProfileUC, ucs.listStaffUC, log),
		complaintHandler: complainthandlers.NewHandler(complainthandlers.Deps{
			Submit:         ucs.submitComplaintUC,
			Triage:         ucs.triageComplaintUC,
			Assign:         ucs.assignComplaintUC,
			Close:          ucs.closeComplaintUC,
			Get:            ucs.getComplaintUC,
			List:           ucs.listComplaintsUC,
			Timeline:       ucs.getTimelineUC,
			AddComment:     ucs.addCommentUC,
			ListComments:   ucs.listCommentsUC,
			Stats:          ucs.getStatsUC,
			ListWorkOrders: ucs.listWorkOrdersUC,
			PatchWorkOrder: ucs.patchWorkOrderUC,
			CreateVisit:    ucs.createVisitUC,
			CheckoutVisit:  ucs.checkoutVisitUC,
		}, log),
		catalogHandler: cataloghandlers.NewHandler(cataloghandlers.Deps{
			CreateCategory:    ucs.createCategoryUC,
			UpdateCategory:    ucs.updateCategoryUC,
			ListCategories:    ucs.listCategoriesUC,
			UpsertGuidance:    ucs.upsertGuidanceUC,
			GetGuidance:       ucs.getGuidanceUC,
			CreateNotice:      ucs.createNoticeUC,
			UpdateNotice:      ucs.updateNoticeUC,
			ListPublicNotices: ucs.listPublicNoticesUC,
			ListAdminNotices:  ucs.listAdminNoticesUC,
			CreateFAQ:         ucs.createFAQUC,
			UpdateFAQ:         ucs.updateFAQUC,
			ListFAQs:          ucs.listFAQsUC,
		}, log),
		notificationHandler: notificationhandlers.NewHandler(notificationhandlers.Deps{
			Claim:          ucs.claimUC,
			Report:         ucs.reportDeliveryUC,
			ListQueue:      ucs.listQueueUC,
			Requeue:        ucs.requeueFailedUC,
			UpsertTemplate: ucs.upsertTemplateUC,
			ListTemplates:  ucs.listTemplatesUC,
		}, log),
	}
}
