package catalog

import "context"

// Lookups return nil, nil when the row does not exist.

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByCode(ctx context.Context, code string) (*Category, error)
	// List orders by display_order then id.
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
}

type GuidanceTemplateRepository interface {
	// Upsert keeps one template per category.
	Upsert(ctx context.Context, g *GuidanceTemplate) error
	GetByCategory(ctx context.Context, categoryID uint) (*GuidanceTemplate, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, n *Notice) error
	Update(ctx context.Context, n *Notice) error
	GetByID(ctx context.Context, id uint) (*Notice, error)
	// ListPublished returns published notices for siteCode plus global ones,
	// pinned first then newest first. An empty siteCode returns every
	// published notice.
	ListPublished(ctx context.Context, siteCode string, page, pageSize int) ([]*Notice, int64, error)
	// ListAll returns notices of every status visible to siteCode, newest first.
	ListAll(ctx context.Context, siteCode string, page, pageSize int) ([]*Notice, int64, error)
}

type FAQRepository interface {
	Create(ctx context.Context, f *FAQ) error
	Update(ctx context.Context, f *FAQ) error
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	// List orders by display_order then id.
	List(ctx context.Context, activeOnly bool) ([]*FAQ, error)
}
