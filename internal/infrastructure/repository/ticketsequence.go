package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

const sequenceInsertRetries = 3

// DBSequenceAllocator keeps one counter row per UTC day and increments it in
// place. Inside a transaction the row stays locked until commit, so
// concurrent submissions on the same day serialize on it.
type DBSequenceAllocator struct {
	db *gorm.DB
}

func NewDBSequenceAllocator(database *gorm.DB) complaint.SequenceAllocator {
	return &DBSequenceAllocator{db: database}
}

func (a *DBSequenceAllocator) Next(ctx context.Context, dayKey string) (int64, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	for attempt := 0; attempt < sequenceInsertRetries; attempt++ {
		result := tx.Model(&models.DailySequenceModel{}).
			Where("seq_date = ?", dayKey).
			UpdateColumn("last_value", gorm.Expr("last_value + 1"))
		if result.Error != nil {
			return 0, fmt.Errorf("failed to increment ticket sequence: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// First ticket of the day. A concurrent insert wins the key and
			// this attempt falls through to the increment again.
			insert := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.DailySequenceModel{SeqDate: dayKey, LastValue: 1})
			if insert.Error != nil {
				return 0, fmt.Errorf("failed to start ticket sequence: %w", insert.Error)
			}
			if insert.RowsAffected == 1 {
				return 1, nil
			}
			continue
		}

		var row models.DailySequenceModel
		if err := tx.Where("seq_date = ?", dayKey).First(&row).Error; err != nil {
			return 0, fmt.Errorf("failed to read ticket sequence: %w", err)
		}
		return row.LastValue, nil
	}

	return 0, fmt.Errorf("failed to allocate ticket sequence for %s after %d attempts", dayKey, sequenceInsertRetries)
}
