package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type VisitLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	logger logger.Interface
}

func NewVisitLogRepository(database *gorm.DB, logger logger.Interface) complaint.VisitRepository {
	return &VisitLogRepositoryImpl{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
		logger: logger,
	}
}

func (r *VisitLogRepositoryImpl) Create(ctx context.Context, v *complaint.VisitLog) error {
	model := r.mapper.VisitToModel(v)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create visit log", "complaint_id", v.ComplaintID(), "error", err)
		return translateWriteError(err, "create visit log")
	}
	return v.SetID(model.ID)
}

// Checkout only writes when check_out_at is still NULL, so a second checkout
// never moves the stored time.
func (r *VisitLogRepositoryImpl) Checkout(ctx context.Context, v *complaint.VisitLog) error {
	if v.CheckOutAt() == nil {
		return fmt.Errorf("visit %d has no checkout time", v.ID())
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.VisitLogModel{}).
		Where("id = ? AND check_out_at IS NULL", v.ID()).
		Updates(map[string]interface{}{
			"check_out_at": biztime.ToMillis(*v.CheckOutAt()),
			"result_note":  v.ResultNote(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to check out visit", "id", v.ID(), "error", result.Error)
		return translateWriteError(result.Error, "check out visit")
	}
	return nil
}

func (r *VisitLogRepositoryImpl) GetByID(ctx context.Context, id uint) (*complaint.VisitLog, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *VisitLogRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.VisitLog, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *VisitLogRepositoryImpl) get(tx *gorm.DB, id uint) (*complaint.VisitLog, error) {
	var model models.VisitLogModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get visit log: %w", err)
	}
	return r.mapper.VisitToDomain(&model)
}

func (r *VisitLogRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.VisitLog, error) {
	var rows []models.VisitLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ?", complaintID).
		Order("check_in_at ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list visit logs: %w", err)
	}

	result := make([]*complaint.VisitLog, 0, len(rows))
	for i := range rows {
		v, err := r.mapper.VisitToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
