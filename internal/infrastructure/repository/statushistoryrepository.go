package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

// StatusHistoryRepositoryImpl only inserts and reads; there is no update or
// delete path.
type StatusHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewStatusHistoryRepository(database *gorm.DB) complaint.HistoryRepository {
	return &StatusHistoryRepositoryImpl{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *StatusHistoryRepositoryImpl) Append(ctx context.Context, h *complaint.StatusHistory) error {
	model := r.mapper.HistoryToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "append status history")
	}
	h.SetID(model.ID)
	return nil
}

// ListByComplaint returns the timeline oldest first.
func (r *StatusHistoryRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.StatusHistory, error) {
	var rows []models.StatusHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ?", complaintID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	result := make([]*complaint.StatusHistory, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.HistoryToDomain(&rows[i]))
	}
	return result, nil
}
