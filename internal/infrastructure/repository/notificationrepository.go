package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// NotificationQueueRepositoryImpl is the outbox. Entries are written inside
// the transaction of the transition that produced them and drained by
// delivery workers through the claim/mark methods.
type NotificationQueueRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationQueueRepository(database *gorm.DB, logger logger.Interface) notification.QueueRepository {
	return &NotificationQueueRepositoryImpl{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationQueueRepositoryImpl) Enqueue(ctx context.Context, entry *notification.QueueEntry) error {
	model := r.mapper.ToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to enqueue notification",
			"event_key", entry.EventKey(),
			"recipient", entry.Recipient(),
			"error", err)
		return translateWriteError(err, "enqueue notification")
	}
	return entry.SetID(model.ID)
}

func (r *NotificationQueueRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.QueueEntry, error) {
	var model models.NotificationQueueModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ClaimPending selects candidates oldest first and takes each lease with a
// conditional update, so two workers racing for the same row cannot both
// win it.
func (r *NotificationQueueRepositoryImpl) ClaimPending(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
	if limit <= 0 {
		return []*notification.QueueEntry{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)
	nowMillis := biztime.ToMillis(now)
	cutoffMillis := biztime.ToMillis(leaseCutoff)

	var candidates []models.NotificationQueueModel
	if err := tx.
		Where("status = ? AND (claimed_at IS NULL OR claimed_at < ?)", notification.StatusPending.String(), cutoffMillis).
		Order("id ASC").
		Limit(limit).
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to select pending notifications: %w", err)
	}

	claimed := make([]models.NotificationQueueModel, 0, len(candidates))
	for _, candidate := range candidates {
		result := tx.Model(&models.NotificationQueueModel{}).
			Where("id = ? AND status = ? AND (claimed_at IS NULL OR claimed_at < ?)",
				candidate.ID, notification.StatusPending.String(), cutoffMillis).
			Update("claimed_at", nowMillis)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to claim notification %d: %w", candidate.ID, result.Error)
		}
		if result.RowsAffected == 1 {
			candidate.ClaimedAt = &nowMillis
			claimed = append(claimed, candidate)
		}
	}

	return r.mapper.ToEntities(claimed)
}

func (r *NotificationQueueRepositoryImpl) MarkSent(ctx context.Context, id uint, sentAt time.Time) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationQueueModel{}).
		Where("id = ? AND status = ?", id, notification.StatusPending.String()).
		Updates(map[string]interface{}{
			"status":  notification.StatusSent.String(),
			"sent_at": biztime.ToMillis(sentAt),
			"error":   nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark notification sent: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *NotificationQueueRepositoryImpl) MarkFailed(ctx context.Context, id uint, errMsg string) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationQueueModel{}).
		Where("id = ? AND status = ?", id, notification.StatusPending.String()).
		Updates(map[string]interface{}{
			"status":     notification.StatusFailed.String(),
			"attempts":   gorm.Expr("attempts + 1"),
			"error":      notification.TruncateError(errMsg),
			"claimed_at": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark notification failed: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *NotificationQueueRepositoryImpl) RequeueFailed(ctx context.Context, maxAttempts int) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationQueueModel{}).
		Where("status = ? AND attempts < ?", notification.StatusFailed.String(), maxAttempts).
		Updates(map[string]interface{}{
			"status":     notification.StatusPending.String(),
			"claimed_at": nil,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to requeue notifications: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Infow("requeued failed notifications", "count", result.RowsAffected, "max_attempts", maxAttempts)
	}
	return result.RowsAffected, nil
}

func (r *NotificationQueueRepositoryImpl) List(ctx context.Context, filter notification.QueueFilter) ([]*notification.QueueEntry, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationQueueModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.EventKey != nil {
		query = query.Where("event_key = ?", filter.EventKey.String())
	}
	if filter.ComplaintID != nil {
		query = query.Where("complaint_id = ?", *filter.ComplaintID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("id ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var rows []models.NotificationQueueModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	entries, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
