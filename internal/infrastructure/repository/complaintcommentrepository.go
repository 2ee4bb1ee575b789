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

type ComplaintCommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintCommentRepository(database *gorm.DB) complaint.CommentRepository {
	return &ComplaintCommentRepositoryImpl{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintCommentRepositoryImpl) Create(ctx context.Context, c *complaint.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create comment")
	}
	return c.SetID(model.ID)
}

func (r *ComplaintCommentRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint, includeInternal bool) ([]*complaint.Comment, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("complaint_id = ?", complaintID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var rows []models.ComplaintCommentModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	result := make([]*complaint.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
