package catalog

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

type NoticeStatus string

const (
	NoticeStatusDraft     NoticeStatus = "DRAFT"
	NoticeStatusPublished NoticeStatus = "PUBLISHED"
)

func (s NoticeStatus) IsValid() bool {
	return s == NoticeStatusDraft || s == NoticeStatusPublished
}

func (s NoticeStatus) String() string {
	return string(s)
}

const (
	MaxNoticeTitleLength = 200
	MaxNoticeBodyLength  = 20000
)

// Notice is a Markdown announcement. A nil site code addresses every site.
type Notice struct {
	id          uint
	siteCode    *string
	title       string
	body        string
	isPinned    bool
	status      NoticeStatus
	publishedAt *time.Time
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewNotice(siteCode *string, title, body string, isPinned bool, createdBy uint) (*Notice, error) {
	if createdBy == 0 {
		return nil, fmt.Errorf("creator is required")
	}
	if siteCode != nil && *siteCode == "" {
		siteCode = nil
	}
	n := &Notice{
		siteCode:  siteCode,
		isPinned:  isPinned,
		status:    NoticeStatusDraft,
		createdBy: createdBy,
	}
	if err := n.Edit(title, body); err != nil {
		return nil, err
	}
	n.createdAt = n.updatedAt
	return n, nil
}

func ReconstructNotice(
	id uint,
	siteCode *string,
	title, body string,
	isPinned bool,
	status NoticeStatus,
	publishedAt *time.Time,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Notice, error) {
	if id == 0 {
		return nil, fmt.Errorf("notice ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid notice status: %s", status)
	}
	return &Notice{
		id:          id,
		siteCode:    siteCode,
		title:       title,
		body:        body,
		isPinned:    isPinned,
		status:      status,
		publishedAt: publishedAt,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (n *Notice) ID() uint                { return n.id }
func (n *Notice) SiteCode() *string       { return n.siteCode }
func (n *Notice) Title() string           { return n.title }
func (n *Notice) Body() string            { return n.body }
func (n *Notice) IsPinned() bool          { return n.isPinned }
func (n *Notice) Status() NoticeStatus    { return n.status }
func (n *Notice) PublishedAt() *time.Time { return n.publishedAt }
func (n *Notice) CreatedBy() uint         { return n.createdBy }
func (n *Notice) CreatedAt() time.Time    { return n.createdAt }
func (n *Notice) UpdatedAt() time.Time    { return n.updatedAt }

func (n *Notice) IsPublished() bool {
	return n.status == NoticeStatusPublished
}

func (n *Notice) SetID(id uint) {
	n.id = id
}

func (n *Notice) Edit(title, body string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len([]rune(title)) > MaxNoticeTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxNoticeTitleLength)
	}
	if body == "" {
		return fmt.Errorf("body is required")
	}
	if len([]rune(body)) > MaxNoticeBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxNoticeBodyLength)
	}
	n.title = title
	n.body = body
	n.updatedAt = biztime.NowUTC()
	return nil
}

func (n *Notice) SetPinned(pinned bool) {
	n.isPinned = pinned
	n.updatedAt = biztime.NowUTC()
}

// Publish makes the notice public. published_at keeps the first publish time.
func (n *Notice) Publish() {
	now := biztime.NowUTC()
	n.status = NoticeStatusPublished
	if n.publishedAt == nil {
		n.publishedAt = &now
	}
	n.updatedAt = now
}

// Unpublish returns the notice to draft.
func (n *Notice) Unpublish() {
	n.status = NoticeStatusDraft
	n.updatedAt = biztime.NowUTC()
}
