// Package catalog holds the admin-curated reference data consumed by the
// complaint workflow: categories, guidance templates, notices and FAQs.
package catalog

import (
	"fmt"
	"regexp"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

var categoryCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,49}$`)

// Category classifies complaints. AllowedScope is the scope used when a
// submission does not state one.
type Category struct {
	id           uint
	code         string
	name         string
	allowedScope vo.Scope
	isActive     bool
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(code, name string, allowedScope vo.Scope, displayOrder int) (*Category, error) {
	if !categoryCodePattern.MatchString(code) {
		return nil, fmt.Errorf("invalid category code: %s", code)
	}
	c := &Category{code: code, isActive: true}
	if err := c.Update(name, allowedScope, displayOrder); err != nil {
		return nil, err
	}
	c.createdAt = c.updatedAt
	return c, nil
}

func ReconstructCategory(
	id uint,
	code, name string,
	allowedScope vo.Scope,
	isActive bool,
	displayOrder int,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if !allowedScope.IsValid() {
		return nil, fmt.Errorf("invalid scope: %s", allowedScope)
	}
	return &Category{
		id:           id,
		code:         code,
		name:         name,
		allowedScope: allowedScope,
		isActive:     isActive,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() uint               { return c.id }
func (c *Category) Code() string           { return c.code }
func (c *Category) Name() string           { return c.name }
func (c *Category) AllowedScope() vo.Scope { return c.allowedScope }
func (c *Category) IsActive() bool         { return c.isActive }
func (c *Category) DisplayOrder() int      { return c.displayOrder }
func (c *Category) CreatedAt() time.Time   { return c.createdAt }
func (c *Category) UpdatedAt() time.Time   { return c.updatedAt }

func (c *Category) SetID(id uint) {
	c.id = id
}

func (c *Category) Update(name string, allowedScope vo.Scope, displayOrder int) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len([]rune(name)) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if !allowedScope.IsValid() {
		return fmt.Errorf("invalid scope: %s", allowedScope)
	}
	c.name = name
	c.allowedScope = allowedScope
	c.displayOrder = displayOrder
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}
