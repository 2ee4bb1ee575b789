package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

const errMsgComplaintNotFound = "complaint not found"

// domainError converts an error returned by the complaint aggregate. Errors
// that are not state or scope violations are input problems.
func domainError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, complaint.ErrInvalidScope):
		return errors.NewInvalidScopeError(err.Error())
	case stderrors.Is(err, complaint.ErrInvalidTransition):
		return errors.NewInvalidTransitionError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}

// storageError passes application errors through and hides everything else
// behind msg.
func storageError(err error, msg string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(msg)
}

func requireStaff(actor user.Actor) error {
	if !actor.IsStaff() {
		return errors.NewForbiddenError("staff role required")
	}
	return nil
}

// loadVisible returns the complaint when the actor may address it. Missing
// and out-of-scope complaints are indistinguishable to the caller.
func loadVisible(ctx context.Context, repo complaint.Repository, actor user.Actor, id uint, forUpdate bool) (*complaint.Complaint, error) {
	if id == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	var (
		c   *complaint.Complaint
		err error
	)
	if forUpdate {
		c, err = repo.GetByIDForUpdate(ctx, id)
	} else {
		c, err = repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load complaint %d: %w", id, err)
	}
	if c == nil || !c.VisibleTo(actor) {
		return nil, errors.NewNotFoundError(errMsgComplaintNotFound)
	}
	return c, nil
}

// hasActiveWorkOrder reports whether the complaint has an open or dispatched
// work order other than exceptID.
func hasActiveWorkOrder(ctx context.Context, repo complaint.WorkOrderRepository, complaintID, exceptID uint) (bool, error) {
	workOrders, err := repo.ListByComplaint(ctx, complaintID)
	if err != nil {
		return false, fmt.Errorf("failed to list work orders of complaint %d: %w", complaintID, err)
	}
	for _, wo := range workOrders {
		if wo.ID() != exceptID && wo.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

// transitionRecorder writes the audit row and the notifications for a
// status change. It must run inside the transaction that mutated the
// complaint.
type transitionRecorder struct {
	historyRepo complaint.HistoryRepository
	publisher   notification.Publisher
	observer    TransitionObserver
}

func newTransitionRecorder(historyRepo complaint.HistoryRepository, publisher notification.Publisher, observer TransitionObserver) *transitionRecorder {
	return &transitionRecorder{
		historyRepo: historyRepo,
		publisher:   publisher,
		observer:    observer,
	}
}

func (r *transitionRecorder) record(ctx context.Context, c *complaint.Complaint, tr complaint.Transition, changedBy uint, note string) error {
	entry, err := complaint.NewStatusHistory(c.ID(), tr, changedBy, note)
	if err != nil {
		return err
	}
	if err := r.historyRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

func (r *transitionRecorder) publish(ctx context.Context, key notification.EventKey, c *complaint.Complaint, recipients []string, extra map[string]interface{}) error {
	if r.publisher == nil || len(recipients) == 0 {
		return nil
	}
	id := c.ID()
	data := eventData(c)
	for k, v := range extra {
		data[k] = v
	}
	if err := r.publisher.Publish(ctx, notification.Event{
		Key:         key,
		ComplaintID: &id,
		Recipients:  recipients,
		Data:        data,
	}); err != nil {
		return fmt.Errorf("failed to enqueue %s notification: %w", key, err)
	}
	return nil
}

// observe is called after commit.
func (r *transitionRecorder) observe(tr complaint.Transition) {
	if r.observer != nil {
		r.observer.ObserveTransition(tr.From, tr.To)
	}
}

// eventData is the template data every complaint notification carries.
func eventData(c *complaint.Complaint) map[string]interface{} {
	return map[string]interface{}{
		"complaintId": c.ID(),
		"ticketNo":    c.TicketNo(),
		"title":       c.Title(),
		"status":      c.Status().String(),
		"scope":       c.Scope().String(),
		"priority":    c.Priority().String(),
		"siteCode":    c.SiteCode(),
		"siteName":    c.SiteName(),
		"unitLabel":   c.UnitLabel(),
	}
}

func reporterRecipient(c *complaint.Complaint) []string {
	return []string{notification.UserRecipient(c.ReporterUserID())}
}

func parseOptionalScope(s string) (*vo.Scope, error) {
	if s == "" {
		return nil, nil
	}
	scope, err := vo.NewScope(s)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return &scope, nil
}

func parseOptionalStatus(s string) (*vo.ComplaintStatus, error) {
	if s == "" {
		return nil, nil
	}
	status, err := vo.NewComplaintStatus(s)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return &status, nil
}

func parseOptionalVisitReason(s *string) (*vo.VisitReason, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	reason, err := vo.NewVisitReason(*s)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return &reason, nil
}

// guidanceData returns the category's guidance text for a complaint resolved
// with guidance. A missing or inactive template yields no extra data and
// never blocks the transition.
func guidanceData(ctx context.Context, repo catalog.GuidanceTemplateRepository, log logger.Interface, categoryID uint) map[string]interface{} {
	if repo == nil {
		return nil
	}
	tmpl, err := repo.GetByCategory(ctx, categoryID)
	if err != nil {
		log.Warnw("failed to load guidance template", "error", err, "category_id", categoryID)
		return nil
	}
	if tmpl == nil || !tmpl.IsActive() {
		return nil
	}
	return map[string]interface{}{
		"guidanceTitle": tmpl.Title(),
		"guidanceBody":  tmpl.Body(),
	}
}
