package dto

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/mapper"
)

type ComplaintDTO struct {
	ID               uint       `json:"id"`
	TicketNo         string     `json:"ticket_no"`
	CategoryID       uint       `json:"category_id"`
	Scope            string     `json:"scope"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	ResolutionType   *string    `json:"resolution_type"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	LocationDetail   string     `json:"location_detail"`
	SiteCode         string     `json:"site_code"`
	SiteName         string     `json:"site_name"`
	UnitLabel        string     `json:"unit_label"`
	ReporterUserID   uint       `json:"reporter_user_id"`
	AssignedToUserID *uint      `json:"assigned_to_user_id"`
	RequiresVisit    bool       `json:"requires_visit"`
	VisitReason      *string    `json:"visit_reason"`
	Attachments      []string   `json:"attachments"`
	CreatedAt        time.Time  `json:"created_at"`
	TriagedAt        *time.Time `json:"triaged_at"`
	ClosedAt         *time.Time `json:"closed_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ComplaintDetailDTO is a complaint with everything hanging off it. Comments
// are already filtered for the reader.
type ComplaintDetailDTO struct {
	ComplaintDTO
	WorkOrders []*WorkOrderDTO     `json:"work_orders"`
	Visits     []*VisitDTO         `json:"visits"`
	Comments   []*CommentDTO       `json:"comments"`
	Timeline   []*StatusHistoryDTO `json:"timeline"`
}

type WorkOrderDTO struct {
	ID             uint       `json:"id"`
	ComplaintID    uint       `json:"complaint_id"`
	AssigneeUserID uint       `json:"assignee_user_id"`
	Status         string     `json:"status"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	ResultNote     string     `json:"result_note"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type VisitDTO struct {
	ID            uint       `json:"id"`
	ComplaintID   uint       `json:"complaint_id"`
	UnitLabel     string     `json:"unit_label"`
	VisitorUserID uint       `json:"visitor_user_id"`
	VisitReason   string     `json:"visit_reason"`
	CheckInAt     time.Time  `json:"check_in_at"`
	CheckOutAt    *time.Time `json:"check_out_at"`
	ResultNote    string     `json:"result_note"`
}

type StatusHistoryDTO struct {
	ID          uint      `json:"id"`
	ComplaintID uint      `json:"complaint_id"`
	FromStatus  *string   `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ChangedBy   uint      `json:"changed_by"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	ComplaintID uint      `json:"complaint_id"`
	UserID      uint      `json:"user_id"`
	Comment     string    `json:"comment"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

type StatsDTO struct {
	SiteCode           string           `json:"site_code,omitempty"`
	TotalCount         int64            `json:"total_count"`
	ByStatus           map[string]int64 `json:"by_status"`
	ByScope            map[string]int64 `json:"by_scope"`
	DelayedCount       int64            `json:"delayed_count"`
	AvgResolutionHours *float64         `json:"avg_resolution_hours"`
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}

	var resolution *string
	if rt := c.ResolutionType(); rt != nil {
		s := rt.String()
		resolution = &s
	}
	var visitReason *string
	if vr := c.VisitReason(); vr != nil {
		s := vr.String()
		visitReason = &s
	}

	return &ComplaintDTO{
		ID:               c.ID(),
		TicketNo:         c.TicketNo(),
		CategoryID:       c.CategoryID(),
		Scope:            c.Scope().String(),
		Status:           c.Status().String(),
		Priority:         c.Priority().String(),
		ResolutionType:   resolution,
		Title:            c.Title(),
		Description:      c.Description(),
		LocationDetail:   c.LocationDetail(),
		SiteCode:         c.SiteCode(),
		SiteName:         c.SiteName(),
		UnitLabel:        c.UnitLabel(),
		ReporterUserID:   c.ReporterUserID(),
		AssignedToUserID: c.AssignedToUserID(),
		RequiresVisit:    c.RequiresVisit(),
		VisitReason:      visitReason,
		Attachments:      c.Attachments().Strings(),
		CreatedAt:        c.CreatedAt(),
		TriagedAt:        c.TriagedAt(),
		ClosedAt:         c.ClosedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func ToComplaintDTOList(complaints []*complaint.Complaint) []*ComplaintDTO {
	return orEmpty(mapper.MapSlice(complaints, ToComplaintDTO))
}

func ToWorkOrderDTO(w *complaint.WorkOrder) *WorkOrderDTO {
	if w == nil {
		return nil
	}
	return &WorkOrderDTO{
		ID:             w.ID(),
		ComplaintID:    w.ComplaintID(),
		AssigneeUserID: w.AssigneeUserID(),
		Status:         w.Status().String(),
		ScheduledAt:    w.ScheduledAt(),
		CompletedAt:    w.CompletedAt(),
		ResultNote:     w.ResultNote(),
		CreatedAt:      w.CreatedAt(),
		UpdatedAt:      w.UpdatedAt(),
	}
}

func ToWorkOrderDTOList(workOrders []*complaint.WorkOrder) []*WorkOrderDTO {
	return orEmpty(mapper.MapSlice(workOrders, ToWorkOrderDTO))
}

func ToVisitDTO(v *complaint.VisitLog) *VisitDTO {
	if v == nil {
		return nil
	}
	return &VisitDTO{
		ID:            v.ID(),
		ComplaintID:   v.ComplaintID(),
		UnitLabel:     v.UnitLabel(),
		VisitorUserID: v.VisitorUserID(),
		VisitReason:   v.VisitReason().String(),
		CheckInAt:     v.CheckInAt(),
		CheckOutAt:    v.CheckOutAt(),
		ResultNote:    v.ResultNote(),
	}
}

func ToVisitDTOList(visits []*complaint.VisitLog) []*VisitDTO {
	return orEmpty(mapper.MapSlice(visits, ToVisitDTO))
}

func ToStatusHistoryDTO(h *complaint.StatusHistory) *StatusHistoryDTO {
	if h == nil {
		return nil
	}
	var from *string
	if f := h.FromStatus(); f != nil {
		s := f.String()
		from = &s
	}
	return &StatusHistoryDTO{
		ID:          h.ID(),
		ComplaintID: h.ComplaintID(),
		FromStatus:  from,
		ToStatus:    h.ToStatus().String(),
		ChangedBy:   h.ChangedBy(),
		Note:        h.Note(),
		CreatedAt:   h.CreatedAt(),
	}
}

func ToStatusHistoryDTOList(history []*complaint.StatusHistory) []*StatusHistoryDTO {
	return orEmpty(mapper.MapSlice(history, ToStatusHistoryDTO))
}

func ToCommentDTO(c *complaint.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:          c.ID(),
		ComplaintID: c.ComplaintID(),
		UserID:      c.UserID(),
		Comment:     c.Comment(),
		IsInternal:  c.IsInternal(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToCommentDTOList(comments []*complaint.Comment) []*CommentDTO {
	return orEmpty(mapper.MapSlice(comments, ToCommentDTO))
}

// ToStatsDTO flattens the enum-keyed maps into string keys.
func ToStatsDTO(siteCode string, s *complaint.Stats) *StatsDTO {
	out := &StatsDTO{
		SiteCode:           siteCode,
		TotalCount:         s.TotalCount,
		ByStatus:           make(map[string]int64, len(s.ByStatus)),
		ByScope:            make(map[string]int64, len(s.ByScope)),
		DelayedCount:       s.DelayedCount,
		AvgResolutionHours: s.AvgResolutionHours,
	}
	for _, st := range vo.AllStatuses() {
		out.ByStatus[st.String()] = s.ByStatus[st]
	}
	for _, sc := range vo.AllScopes() {
		out.ByScope[sc.String()] = s.ByScope[sc]
	}
	return out
}

// orEmpty keeps JSON lists as [] instead of null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
