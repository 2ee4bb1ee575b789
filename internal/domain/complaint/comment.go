package complaint

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const MaxCommentLength = 5000

// Comment is immutable once written; corrections are new comments.
type Comment struct {
	id          uint
	complaintID uint
	userID      uint
	comment     string
	isInternal  bool
	createdAt   time.Time
}

func NewComment(complaintID, userID uint, text string, isInternal bool) (*Comment, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len([]rune(text)) > MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		complaintID: complaintID,
		userID:      userID,
		comment:     text,
		isInternal:  isInternal,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, complaintID, userID uint, text string, isInternal bool, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:          id,
		complaintID: complaintID,
		userID:      userID,
		comment:     text,
		isInternal:  isInternal,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint { return c.id }
func (c *Comment) ComplaintID() uint { return c.complaintID }
func (c *Comment) UserID() uint { return c.userID }
func (c *Comment) Comment() string { return c.comment }
func (c *Comment) IsInternal() bool { return c.isInternal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
