package complaint

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/application/complaint/usecases"
	"github.com/sitedesk/sitedesk/internal/domain/user"
)

// SubmitComplaintRequest is the resident submission body. Site and unit are
// never read from it.
type SubmitComplaintRequest struct {
	CategoryID     uint     `json:"category_id" binding:"required"`
	Scope          string   `json:"scope" binding:"omitempty,oneof=PRIVATE COMMON EMERGENCY"`
	Priority       string   `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Title          string   `json:"title" binding:"required,notblank,max=200"`
	Description    string   `json:"description" binding:"required,notblank,max=5000"`
	LocationDetail string   `json:"location_detail" binding:"max=255"`
	RequiresVisit  bool     `json:"requires_visit"`
	VisitReason    *string  `json:"visit_reason"`
	Attachments    []string `json:"attachments"`
}

func (r SubmitComplaintRequest) ToCommand(actor user.Actor, emergency bool) usecases.SubmitComplaintCommand {
	return usecases.SubmitComplaintCommand{
		Actor:          actor,
		CategoryID:     r.CategoryID,
		Scope:          r.Scope,
		Priority:       r.Priority,
		Title:          r.Title,
		Description:    r.Description,
		LocationDetail: r.LocationDetail,
		RequiresVisit:  r.RequiresVisit,
		VisitReason:    r.VisitReason,
		Attachments:    r.Attachments,
		Emergency:      emergency,
	}
}

type TriageComplaintRequest struct {
	Scope          string  `json:"scope" binding:"required,oneof=PRIVATE COMMON EMERGENCY"`
	Priority       string  `json:"priority" binding:"required,oneof=LOW NORMAL HIGH URGENT"`
	ResolutionType *string `json:"resolution_type"`
	RequiresVisit  *bool   `json:"requires_visit"`
	VisitReason    *string `json:"visit_reason"`
	Note           string  `json:"note" binding:"max=1000"`
}

type AssignComplaintRequest struct {
	AssigneeUserID uint       `json:"assignee_user_id" binding:"required"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	Note           string     `json:"note" binding:"max=1000"`
}

type CloseComplaintRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

type AddCommentRequest struct {
	Comment    string `json:"comment" binding:"required,notblank,max=2000"`
	IsInternal bool   `json:"is_internal"`
}

type PatchWorkOrderRequest struct {
	Status     string  `json:"status" binding:"required,oneof=OPEN DISPATCHED DONE CANCELED"`
	ResultNote *string `json:"result_note"`
}

type CreateVisitRequest struct {
	VisitorUserID uint   `json:"visitor_user_id"`
	VisitReason   string `json:"visit_reason" binding:"required"`
	ResultNote    string `json:"result_note" binding:"max=2000"`
}

type CheckoutVisitRequest struct {
	ResultNote *string `json:"result_note"`
}
