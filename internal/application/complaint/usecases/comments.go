package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type AddCommentCommand struct {
	Actor       user.Actor
	ComplaintID uint
	Text        string
	IsInternal  bool
}

type AddCommentUseCase struct {
	complaintRepo complaint.Repository
	commentRepo   complaint.CommentRepository
	logger        logger.Interface
}

func NewAddCommentUseCase(
	complaintRepo complaint.Repository,
	commentRepo complaint.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case",
		"complaint_id", cmd.ComplaintID,
		"user_id", cmd.Actor.UserID,
		"internal", cmd.IsInternal)

	c, err := loadVisible(ctx, uc.complaintRepo, cmd.Actor, cmd.ComplaintID, false)
	if err != nil {
		uc.logger.Warnw("comment target not available", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, storageError(err, "failed to add comment")
	}

	// Residents can never write internal notes, whatever the request says.
	internal := cmd.IsInternal && !cmd.Actor.IsResident()

	comment, err := complaint.NewComment(c.ID(), cmd.Actor.UserID, utils.NormalizeText(cmd.Text), internal)
	if err != nil {
		return nil, domainError(err)
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to add comment")
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "complaint_id", c.ID())
	return dto.ToCommentDTO(comment), nil
}

type ListCommentsQuery struct {
	Actor       user.Actor
	ComplaintID uint
}

type ListCommentsUseCase struct {
	complaintRepo complaint.Repository
	commentRepo   complaint.CommentRepository
	logger        logger.Interface
}

func NewListCommentsUseCase(
	complaintRepo complaint.Repository,
	commentRepo complaint.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

// Execute lists comments oldest first. Internal notes are hidden from
// residents.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	c, err := loadVisible(ctx, uc.complaintRepo, query.Actor, query.ComplaintID, false)
	if err != nil {
		return nil, storageError(err, "failed to list comments")
	}

	comments, err := uc.commentRepo.ListByComplaint(ctx, c.ID(), !query.Actor.IsResident())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to list comments")
	}
	return dto.ToCommentDTOList(comments), nil
}
