package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type WorkOrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	logger logger.Interface
}

func NewWorkOrderRepository(database *gorm.DB, logger logger.Interface) complaint.WorkOrderRepository {
	return &WorkOrderRepositoryImpl{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
		logger: logger,
	}
}

// Create inserts the work order. The storage trigger rejects rows whose
// complaint is PRIVATE; that rejection surfaces as an invalid scope error.
func (r *WorkOrderRepositoryImpl) Create(ctx context.Context, w *complaint.WorkOrder) error {
	model := r.mapper.WorkOrderToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Warnw("work order insert rejected", "complaint_id", w.ComplaintID(), "error", err)
		return translateWriteError(err, "create work order")
	}
	return w.SetID(model.ID)
}

func (r *WorkOrderRepositoryImpl) Update(ctx context.Context, w *complaint.WorkOrder) error {
	model := r.mapper.WorkOrderToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.WorkOrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"scheduled_at": model.ScheduledAt,
			"completed_at": model.CompletedAt,
			"result_note":  model.ResultNote,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update work order", "id", model.ID, "error", result.Error)
		return translateWriteError(result.Error, "update work order")
	}
	return nil
}

func (r *WorkOrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*complaint.WorkOrder, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *WorkOrderRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.WorkOrder, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *WorkOrderRepositoryImpl) get(tx *gorm.DB, id uint) (*complaint.WorkOrder, error) {
	var model models.WorkOrderModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return r.mapper.WorkOrderToDomain(&model)
}

func (r *WorkOrderRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.WorkOrder, error) {
	var rows []models.WorkOrderModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ?", complaintID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	result := make([]*complaint.WorkOrder, 0, len(rows))
	for i := range rows {
		w, err := r.mapper.WorkOrderToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, nil
}

func (r *WorkOrderRepositoryImpl) CountByComplaint(ctx context.Context, complaintID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.WorkOrderModel{}).
		Where("complaint_id = ?", complaintID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count work orders: %w", err)
	}
	return count, nil
}
