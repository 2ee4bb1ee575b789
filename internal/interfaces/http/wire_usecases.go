package http

import (
	catalogUsecases "github.com/sitedesk/sitedesk/internal/application/catalog/usecases"
	complaintUsecases "github.com/sitedesk/sitedesk/internal/application/complaint/usecases"
	notificationUsecases "github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	userUsecases "github.com/sitedesk/sitedesk/internal/application/user/usecases"
	"github.com/sitedesk/sitedesk/internal/infrastructure/notifier"
	"github.com/sitedesk/sitedesk/internal/shared/services/markdown"
)

// allUseCases holds every use case so handlers and background services can
// share instances.
type allUseCases struct {
	// User
	resolveActorUC  *userUsecases.ResolveActorUseCase
	getProfileUC    *userUsecases.GetProfileUseCase
	upsertProfileUC *userUsecases.UpsertProfileUseCase
	listStaffUC     *userUsecases.ListSiteStaffUseCase

	// Complaint lifecycle
	submitComplaintUC *complaintUsecases.SubmitComplaintUseCase
	triageComplaintUC *complaintUsecases.TriageComplaintUseCase
	assignComplaintUC *complaintUsecases.AssignComplaintUseCase
	closeComplaintUC  *complaintUsecases.CloseComplaintUseCase
	getComplaintUC    *complaintUsecases.GetComplaintUseCase
	listComplaintsUC  *complaintUsecases.ListComplaintsUseCase
	getTimelineUC     *complaintUsecases.GetTimelineUseCase
	addCommentUC      *complaintUsecases.AddCommentUseCase
	listCommentsUC    *complaintUsecases.ListCommentsUseCase
	getStatsUC        *complaintUsecases.GetStatsUseCase
	listWorkOrdersUC  *complaintUsecases.ListWorkOrdersUseCase
	patchWorkOrderUC  *complaintUsecases.PatchWorkOrderUseCase
	createVisitUC     *complaintUsecases.CreateVisitUseCase
	checkoutVisitUC   *complaintUsecases.CheckoutVisitUseCase

	// Catalog
	createCategoryUC    *catalogUsecases.CreateCategoryUseCase
	updateCategoryUC    *catalogUsecases.UpdateCategoryUseCase
	listCategoriesUC    *catalogUsecases.ListCategoriesUseCase
	upsertGuidanceUC    *catalogUsecases.UpsertGuidanceUseCase
	getGuidanceUC       *catalogUsecases.GetGuidanceUseCase
	createNoticeUC      *catalogUsecases.CreateNoticeUseCase
	updateNoticeUC      *catalogUsecases.UpdateNoticeUseCase
	listPublicNoticesUC *catalogUsecases.ListPublicNoticesUseCase
	listAdminNoticesUC  *catalogUsecases.ListAdminNoticesUseCase
	createFAQUC         *catalogUsecases.CreateFAQUseCase
	updateFAQUC         *catalogUsecases.UpdateFAQUseCase
	listFAQsUC          *catalogUsecases.ListFAQsUseCase
	seedCatalogUC       *catalogUsecases.SeedCatalogUseCase

	// Notification
	dispatchUC       *notificationUsecases.DispatchNotificationsUseCase
	claimUC          *notificationUsecases.ClaimNotificationsUseCase
	reportDeliveryUC *notificationUsecases.ReportDeliveryUseCase
	listQueueUC      *notificationUsecases.ListQueueUseCase
	requeueFailedUC  *notificationUsecases.RequeueFailedUseCase
	upsertTemplateUC *notificationUsecases.UpsertTemplateUseCase
	listTemplatesUC  *notificationUsecases.ListTemplatesUseCase
}

// initUseCases builds every use case from the repositories and the shared
// infrastructure created in initInfrastructure.
func (c *Container) initUseCases() {
	cfg := c.cfg
	log := c.log
	r := c.repos

	publisher := notificationUsecases.NewOutboxPublisher(r.queueRepo, r.templateRepo, cfg.Notification.DefaultChannel, log)
	renderer := markdown.NewRenderer()
	senders, fallback := notifier.Senders(cfg.Email, log)

	c.ucs = &allUseCases{
		resolveActorUC:  userUsecases.NewResolveActorUseCase(r.userRepo, log),
		getProfileUC:    userUsecases.NewGetProfileUseCase(r.userRepo, log),
		upsertProfileUC: userUsecases.NewUpsertProfileUseCase(r.userRepo, log),
		listStaffUC:     userUsecases.NewListSiteStaffUseCase(r.userRepo, log),

		submitComplaintUC: complaintUsecases.NewSubmitComplaintUseCase(
			r.complaintRepo, r.categoryRepo, r.guidanceRepo, r.historyRepo, r.sequence,
			c.txManager, publisher, c.metrics, cfg.Complaint, log,
		),
		triageComplaintUC: complaintUsecases.NewTriageComplaintUseCase(
			r.complaintRepo, r.guidanceRepo, r.historyRepo, c.txManager, publisher, c.metrics, log,
		),
		assignComplaintUC: complaintUsecases.NewAssignComplaintUseCase(
			r.complaintRepo, r.workOrderRepo, r.userRepo, r.historyRepo, c.txManager, publisher, c.metrics, log,
		),
		closeComplaintUC: complaintUsecases.NewCloseComplaintUseCase(
			r.complaintRepo, r.historyRepo, c.txManager, publisher, c.metrics, log,
		),
		getComplaintUC: complaintUsecases.NewGetComplaintUseCase(
			r.complaintRepo, r.workOrderRepo, r.visitRepo, r.commentRepo, r.historyRepo, log,
		),
		listComplaintsUC: complaintUsecases.NewListComplaintsUseCase(r.complaintRepo, cfg.Complaint, log),
		getTimelineUC:    complaintUsecases.NewGetTimelineUseCase(r.complaintRepo, r.historyRepo, log),
		addCommentUC:     complaintUsecases.NewAddCommentUseCase(r.complaintRepo, r.commentRepo, log),
		listCommentsUC:   complaintUsecases.NewListCommentsUseCase(r.complaintRepo, r.commentRepo, log),
		getStatsUC:       complaintUsecases.NewGetStatsUseCase(r.complaintRepo, cfg.Complaint, log),
		listWorkOrdersUC: complaintUsecases.NewListWorkOrdersUseCase(r.complaintRepo, r.workOrderRepo, log),
		patchWorkOrderUC: complaintUsecases.NewPatchWorkOrderUseCase(
			r.complaintRepo, r.workOrderRepo, r.historyRepo, c.txManager, publisher, c.metrics, log,
		),
		createVisitUC:   complaintUsecases.NewCreateVisitUseCase(r.complaintRepo, r.visitRepo, c.txManager, publisher, log),
		checkoutVisitUC: complaintUsecases.NewCheckoutVisitUseCase(r.complaintRepo, r.visitRepo, c.txManager, log),

		createCategoryUC:    catalogUsecases.NewCreateCategoryUseCase(r.categoryRepo, log),
		updateCategoryUC:    catalogUsecases.NewUpdateCategoryUseCase(r.categoryRepo, log),
		listCategoriesUC:    catalogUsecases.NewListCategoriesUseCase(r.categoryRepo, log),
		upsertGuidanceUC:    catalogUsecases.NewUpsertGuidanceUseCase(r.categoryRepo, r.guidanceRepo, log),
		getGuidanceUC:       catalogUsecases.NewGetGuidanceUseCase(r.guidanceRepo, log),
		createNoticeUC:      catalogUsecases.NewCreateNoticeUseCase(r.noticeRepo, renderer, log),
		updateNoticeUC:      catalogUsecases.NewUpdateNoticeUseCase(r.noticeRepo, renderer, log),
		listPublicNoticesUC: catalogUsecases.NewListPublicNoticesUseCase(r.noticeRepo, renderer, log),
		listAdminNoticesUC:  catalogUsecases.NewListAdminNoticesUseCase(r.noticeRepo, renderer, log),
		createFAQUC:         catalogUsecases.NewCreateFAQUseCase(r.faqRepo, log),
		updateFAQUC:         catalogUsecases.NewUpdateFAQUseCase(r.faqRepo, log),
		listFAQsUC:          catalogUsecases.NewListFAQsUseCase(r.faqRepo, log),
		seedCatalogUC: catalogUsecases.NewSeedCatalogUseCase(
			r.categoryRepo, r.guidanceRepo, r.faqRepo, r.templateRepo, c.txManager, log,
		),

		dispatchUC: notificationUsecases.NewDispatchNotificationsUseCase(
			r.queueRepo, r.userRepo, senders, fallback, c.metrics, cfg.Notification, log,
		),
		claimUC:          notificationUsecases.NewClaimNotificationsUseCase(r.queueRepo, cfg.Notification, log),
		reportDeliveryUC: notificationUsecases.NewReportDeliveryUseCase(r.queueRepo, log),
		listQueueUC:      notificationUsecases.NewListQueueUseCase(r.queueRepo, log),
		requeueFailedUC:  notificationUsecases.NewRequeueFailedUseCase(r.queueRepo, cfg.Notification, log),
		upsertTemplateUC: notificationUsecases.NewUpsertTemplateUseCase(r.templateRepo, log),
		listTemplatesUC:  notificationUsecases.NewListTemplatesUseCase(r.templateRepo, log),
	}
}
