package catalog

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// GuidanceTemplate is the self-help text sent for a category's private
// complaints.
type GuidanceTemplate struct {
	id         uint
	categoryID uint
	title      string
	body       string
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewGuidanceTemplate(categoryID uint, title, body string) (*GuidanceTemplate, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	g := &GuidanceTemplate{categoryID: categoryID, isActive: true}
	if err := g.Update(title, body, true); err != nil {
		return nil, err
	}
	g.createdAt = g.updatedAt
	return g, nil
}

func ReconstructGuidanceTemplate(id, categoryID uint, title, body string, isActive bool, createdAt, updatedAt time.Time) *GuidanceTemplate {
	return &GuidanceTemplate{
		id:         id,
		categoryID: categoryID,
		title:      title,
		body:       body,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (g *GuidanceTemplate) ID() uint             { return g.id }
func (g *GuidanceTemplate) CategoryID() uint     { return g.categoryID }
func (g *GuidanceTemplate) Title() string        { return g.title }
func (g *GuidanceTemplate) Body() string         { return g.body }
func (g *GuidanceTemplate) IsActive() bool       { return g.isActive }
func (g *GuidanceTemplate) CreatedAt() time.Time { return g.createdAt }
func (g *GuidanceTemplate) UpdatedAt() time.Time { return g.updatedAt }

func (g *GuidanceTemplate) SetID(id uint) {
	g.id = id
}

func (g *GuidanceTemplate) Update(title, body string, isActive bool) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len([]rune(title)) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if body == "" {
		return fmt.Errorf("body is required")
	}
	if len([]rune(body)) > 10000 {
		return fmt.Errorf("body exceeds maximum length of 10000 characters")
	}
	g.title = title
	g.body = body
	g.isActive = isActive
	g.updatedAt = biztime.NowUTC()
	return nil
}
