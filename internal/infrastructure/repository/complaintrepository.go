package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// ComplaintRepositoryImpl implements complaint.Repository
type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	logger logger.Interface
}

func NewComplaintRepository(database *gorm.DB, logger logger.Interface) complaint.Repository {
	return &ComplaintRepositoryImpl{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
		logger: logger,
	}
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create complaint", "ticket_no", c.TicketNo(), "error", err)
		return translateWriteError(err, "create complaint")
	}

	return c.SetID(model.ID)
}

// Update writes every mutable column when the stored version still equals
// expectedVersion.
func (r *ComplaintRepositoryImpl) Update(ctx context.Context, c *complaint.Complaint, expectedVersion int) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ComplaintModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"category_id":         model.CategoryID,
			"scope":               model.Scope,
			"status":              model.Status,
			"priority":            model.Priority,
			"resolution_type":     model.ResolutionType,
			"title":               model.Title,
			"description":         model.Description,
			"location_detail":     model.LocationDetail,
			"assigned_to_user_id": model.AssignedToUserID,
			"requires_visit":      model.RequiresVisit,
			"visit_reason":        model.VisitReason,
			"attachments":         model.Attachments,
			"version":             model.Version,
			"triaged_at":          model.TriagedAt,
			"closed_at":           model.ClosedAt,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update complaint", "id", model.ID, "error", result.Error)
		return translateWriteError(result.Error, "update complaint")
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("complaint was modified concurrently, please retry")
	}

	return nil
}

func (r *ComplaintRepositoryImpl) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *ComplaintRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *ComplaintRepositoryImpl) get(tx *gorm.DB, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepositoryImpl) List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ComplaintModel{})

	if filter.SiteCode != "" {
		query = query.Where("site_code = ?", filter.SiteCode)
	}
	if filter.ReporterUserID != nil {
		query = query.Where("reporter_user_id = ?", *filter.ReporterUserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Scope != nil {
		query = query.Where("scope = ?", filter.Scope.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var rows []models.ComplaintModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	result := make([]*complaint.Complaint, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	return result, total, nil
}

// Stats aggregates in the database. An empty table yields zero counts and a
// nil average.
func (r *ComplaintRepositoryImpl) Stats(ctx context.Context, filter complaint.StatsFilter) (*complaint.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	scoped := func() *gorm.DB {
		q := tx.Model(&models.ComplaintModel{})
		if filter.SiteCode != "" {
			q = q.Where("site_code = ?", filter.SiteCode)
		}
		return q
	}

	stats := complaint.NewStats()

	var byStatus []struct {
		Status string
		Total  int64
	}
	if err := scoped().Select("status, COUNT(*) AS total").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[vo.ComplaintStatus(row.Status)] = row.Total
		stats.TotalCount += row.Total
	}

	var byScope []struct {
		Scope string
		Total int64
	}
	if err := scoped().Select("scope, COUNT(*) AS total").Group("scope").Scan(&byScope).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by scope: %w", err)
	}
	for _, row := range byScope {
		stats.ByScope[vo.Scope(row.Scope)] = row.Total
	}

	if err := scoped().
		Where("status NOT IN ?", statusStrings(vo.ResolvedStatuses())).
		Where("created_at < ?", biztime.ToMillis(filter.DelayedBefore)).
		Count(&stats.DelayedCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count delayed complaints: %w", err)
	}

	var resolution struct {
		TotalMillis int64
		Closed      int64
	}
	if err := scoped().
		Select("COALESCE(SUM(closed_at - created_at), 0) AS total_millis, COUNT(*) AS closed").
		Where("closed_at IS NOT NULL").
		Scan(&resolution).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate resolution time: %w", err)
	}
	stats.SetAverageResolution(resolution.TotalMillis, resolution.Closed)

	return stats, nil
}

func statusStrings(statuses []vo.ComplaintStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
