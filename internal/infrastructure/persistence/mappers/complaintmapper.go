package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// ComplaintMapper converts the complaint aggregate and its sub-entities
// between domain and persistence form.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)

	WorkOrderToModel(w *complaint.WorkOrder) *models.WorkOrderModel
	WorkOrderToDomain(model *models.WorkOrderModel) (*complaint.WorkOrder, error)

	VisitToModel(v *complaint.VisitLog) *models.VisitLogModel
	VisitToDomain(model *models.VisitLogModel) (*complaint.VisitLog, error)

	HistoryToModel(h *complaint.StatusHistory) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel) *complaint.StatusHistory

	CommentToModel(c *complaint.Comment) *models.ComplaintCommentModel
	CommentToDomain(model *models.ComplaintCommentModel) (*complaint.Comment, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	model := &models.ComplaintModel{
		ID:               c.ID(),
		TicketNo:         c.TicketNo(),
		CategoryID:       c.CategoryID(),
		Scope:            c.Scope().String(),
		Status:           c.Status().String(),
		Priority:         c.Priority().String(),
		Title:            c.Title(),
		Description:      c.Description(),
		LocationDetail:   c.LocationDetail(),
		SiteCode:         c.SiteCode(),
		SiteName:         c.SiteName(),
		UnitLabel:        c.UnitLabel(),
		ReporterUserID:   c.ReporterUserID(),
		AssignedToUserID: c.AssignedToUserID(),
		RequiresVisit:    c.RequiresVisit(),
		Attachments:      datatypes.JSONSlice[string](c.Attachments()),
		Version:          c.Version(),
		CreatedAt:        biztime.ToMillis(c.CreatedAt()),
		TriagedAt:        biztime.ToMillisPtr(c.TriagedAt()),
		ClosedAt:         biztime.ToMillisPtr(c.ClosedAt()),
		UpdatedAt:        biztime.ToMillis(c.UpdatedAt()),
	}

	if rt := c.ResolutionType(); rt != nil {
		s := rt.String()
		model.ResolutionType = &s
	}
	if vr := c.VisitReason(); vr != nil {
		s := vr.String()
		model.VisitReason = &s
	}

	return model
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	var resolutionType *vo.ResolutionType
	if model.ResolutionType != nil {
		rt := vo.ResolutionType(*model.ResolutionType)
		resolutionType = &rt
	}

	var visitReason *vo.VisitReason
	if model.VisitReason != nil {
		vr := vo.VisitReason(*model.VisitReason)
		visitReason = &vr
	}

	c, err := complaint.ReconstructComplaint(
		model.ID,
		model.TicketNo,
		model.CategoryID,
		vo.Scope(model.Scope),
		vo.ComplaintStatus(model.Status),
		vo.Priority(model.Priority),
		resolutionType,
		model.Title,
		model.Description,
		model.LocationDetail,
		model.SiteCode,
		model.SiteName,
		model.UnitLabel,
		model.ReporterUserID,
		model.AssignedToUserID,
		model.RequiresVisit,
		visitReason,
		vo.Attachments(model.Attachments),
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillisPtr(model.TriagedAt),
		biztime.FromMillisPtr(model.ClosedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct complaint (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *ComplaintMapperImpl) WorkOrderToModel(w *complaint.WorkOrder) *models.WorkOrderModel {
	return &models.WorkOrderModel{
		ID:             w.ID(),
		ComplaintID:    w.ComplaintID(),
		AssigneeUserID: w.AssigneeUserID(),
		Status:         w.Status().String(),
		ScheduledAt:    biztime.ToMillisPtr(w.ScheduledAt()),
		CompletedAt:    biztime.ToMillisPtr(w.CompletedAt()),
		ResultNote:     w.ResultNote(),
		CreatedAt:      biztime.ToMillis(w.CreatedAt()),
		UpdatedAt:      biztime.ToMillis(w.UpdatedAt()),
	}
}

func (m *ComplaintMapperImpl) WorkOrderToDomain(model *models.WorkOrderModel) (*complaint.WorkOrder, error) {
	return complaint.ReconstructWorkOrder(
		model.ID,
		model.ComplaintID,
		model.AssigneeUserID,
		vo.WorkOrderStatus(model.Status),
		biztime.FromMillisPtr(model.ScheduledAt),
		biztime.FromMillisPtr(model.CompletedAt),
		model.ResultNote,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *ComplaintMapperImpl) VisitToModel(v *complaint.VisitLog) *models.VisitLogModel {
	return &models.VisitLogModel{
		ID:            v.ID(),
		ComplaintID:   v.ComplaintID(),
		UnitLabel:     v.UnitLabel(),
		VisitorUserID: v.VisitorUserID(),
		VisitReason:   v.VisitReason().String(),
		CheckInAt:     biztime.ToMillis(v.CheckInAt()),
		CheckOutAt:    biztime.ToMillisPtr(v.CheckOutAt()),
		ResultNote:    v.ResultNote(),
	}
}

func (m *ComplaintMapperImpl) VisitToDomain(model *models.VisitLogModel) (*complaint.VisitLog, error) {
	return complaint.ReconstructVisitLog(
		model.ID,
		model.ComplaintID,
		model.UnitLabel,
		model.VisitorUserID,
		vo.VisitReason(model.VisitReason),
		biztime.FromMillis(model.CheckInAt),
		biztime.FromMillisPtr(model.CheckOutAt),
		model.ResultNote,
	)
}

func (m *ComplaintMapperImpl) HistoryToModel(h *complaint.StatusHistory) *models.StatusHistoryModel {
	model := &models.StatusHistoryModel{
		ID:          h.ID(),
		ComplaintID: h.ComplaintID(),
		ToStatus:    h.ToStatus().String(),
		ChangedBy:   h.ChangedBy(),
		Note:        h.Note(),
		CreatedAt:   biztime.ToMillis(h.CreatedAt()),
	}
	if from := h.FromStatus(); from != nil {
		s := from.String()
		model.FromStatus = &s
	}
	return model
}

func (m *ComplaintMapperImpl) HistoryToDomain(model *models.StatusHistoryModel) *complaint.StatusHistory {
	var from *vo.ComplaintStatus
	if model.FromStatus != nil {
		s := vo.ComplaintStatus(*model.FromStatus)
		from = &s
	}
	return complaint.ReconstructStatusHistory(
		model.ID,
		model.ComplaintID,
		from,
		vo.ComplaintStatus(model.ToStatus),
		model.ChangedBy,
		model.Note,
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m *ComplaintMapperImpl) CommentToModel(c *complaint.Comment) *models.ComplaintCommentModel {
	return &models.ComplaintCommentModel{
		ID:          c.ID(),
		ComplaintID: c.ComplaintID(),
		UserID:      c.UserID(),
		Comment:     c.Comment(),
		IsInternal:  c.IsInternal(),
		CreatedAt:   biztime.ToMillis(c.CreatedAt()),
	}
}

func (m *ComplaintMapperImpl) CommentToDomain(model *models.ComplaintCommentModel) (*complaint.Comment, error) {
	return complaint.ReconstructComment(
		model.ID,
		model.ComplaintID,
		model.UserID,
		model.Comment,
		model.IsInternal,
		biztime.FromMillis(model.CreatedAt),
	)
}
