package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// memoryCategoryRepository keeps categories in insertion order.
type memoryCategoryRepository struct {
	items     []*catalog.Category
	CreateErr error
	creates   int
	updates   int
}

func (m *memoryCategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.creates++
	c.SetID(uint(len(m.items) + 1))
	m.items = append(m.items, c)
	return nil
}

func (m *memoryCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	m.updates++
	return nil
}

func (m *memoryCategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	for _, c := range m.items {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryCategoryRepository) GetByCode(ctx context.Context, code string) (*catalog.Category, error) {
	for _, c := range m.items {
		if c.Code() == code {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	var out []*catalog.Category
	for _, c := range m.items {
		if activeOnly && !c.IsActive() {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder() < out[j].DisplayOrder() })
	return out, nil
}

type memoryGuidanceRepository struct {
	byCategory map[uint]*catalog.GuidanceTemplate
	upserts    int
}

func (m *memoryGuidanceRepository) Upsert(ctx context.Context, g *catalog.GuidanceTemplate) error {
	if m.byCategory == nil {
		m.byCategory = map[uint]*catalog.GuidanceTemplate{}
	}
	m.upserts++
	if g.ID() == 0 {
		g.SetID(uint(len(m.byCategory) + 1))
	}
	m.byCategory[g.CategoryID()] = g
	return nil
}

func (m *memoryGuidanceRepository) GetByCategory(ctx context.Context, categoryID uint) (*catalog.GuidanceTemplate, error) {
	return m.byCategory[categoryID], nil
}

type memoryFAQRepository struct {
	items []*catalog.FAQ
}

func (m *memoryFAQRepository) Create(ctx context.Context, f *catalog.FAQ) error {
	f.SetID(uint(len(m.items) + 1))
	m.items = append(m.items, f)
	return nil
}

func (m *memoryFAQRepository) Update(ctx context.Context, f *catalog.FAQ) error {
	return nil
}

func (m *memoryFAQRepository) GetByID(ctx context.Context, id uint) (*catalog.FAQ, error) {
	for _, f := range m.items {
		if f.ID() == id {
			return f, nil
		}
	}
	return nil, nil
}

func (m *memoryFAQRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.FAQ, error) {
	var out []*catalog.FAQ
	for _, f := range m.items {
		if activeOnly && !f.IsActive() {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

type mockNoticeRepository struct {
	notices           map[uint]*catalog.Notice
	ListPublishedFunc func(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error)
	ListAllFunc       func(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error)
	updated           []*catalog.Notice
}

func (m *mockNoticeRepository) Create(ctx context.Context, n *catalog.Notice) error {
	if m.notices == nil {
		m.notices = map[uint]*catalog.Notice{}
	}
	n.SetID(uint(len(m.notices) + 1))
	m.notices[n.ID()] = n
	return nil
}

func (m *mockNoticeRepository) Update(ctx context.Context, n *catalog.Notice) error {
	m.updated = append(m.updated, n)
	return nil
}

func (m *mockNoticeRepository) GetByID(ctx context.Context, id uint) (*catalog.Notice, error) {
	return m.notices[id], nil
}

func (m *mockNoticeRepository) ListPublished(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx, siteCode, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNoticeRepository) ListAll(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, siteCode, page, pageSize)
	}
	return nil, 0, nil
}

type memoryTemplateRepository struct {
	byKey map[string]*notification.Template
}

func (m *memoryTemplateRepository) Upsert(ctx context.Context, t *notification.Template) error {
	if m.byKey == nil {
		m.byKey = map[string]*notification.Template{}
	}
	m.byKey[t.EventKey().String()+"/"+t.Channel()] = t
	return nil
}

func (m *memoryTemplateRepository) Get(ctx context.Context, key notification.EventKey, channel string) (*notification.Template, error) {
	return m.byKey[key.String()+"/"+channel], nil
}

func (m *memoryTemplateRepository) List(ctx context.Context) ([]*notification.Template, error) {
	out := make([]*notification.Template, 0, len(m.byKey))
	for _, t := range m.byKey {
		out = append(out, t)
	}
	return out, nil
}

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRenderer struct {
	err error
}

func (s stubRenderer) Render(source string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("<p>%s</p>", source), nil
}

func testLogger() logger.Interface {
	return logger.NewNop()
}

func siteAdmin(site string) user.Actor {
	return user.Actor{UserID: 500, Role: user.RoleAdmin, SiteCode: site, SiteName: "Site"}
}

func superAdmin() user.Actor {
	return user.Actor{UserID: 1, Role: user.RoleSuperAdmin}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
