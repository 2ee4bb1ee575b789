package usecases

import (
	"context"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type mockComplaintRepository struct {
	CreateFunc           func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc           func(ctx context.Context, c *complaint.Complaint, expectedVersion int) error
	GetByIDFunc          func(ctx context.Context, id uint) (*complaint.Complaint, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*complaint.Complaint, error)
	ListFunc             func(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, int64, error)
	StatsFunc            func(ctx context.Context, filter complaint.StatsFilter) (*complaint.Stats, error)
}

func (m *mockComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint, expectedVersion int) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c, expectedVersion)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// GetByIDForUpdate falls back to GetByIDFunc so tests only stub one lookup.
func (m *mockComplaintRepository) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) Stats(ctx context.Context, filter complaint.StatsFilter) (*complaint.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, filter)
	}
	return complaint.NewStats(), nil
}

type mockWorkOrderRepository struct {
	CreateFunc           func(ctx context.Context, w *complaint.WorkOrder) error
	UpdateFunc           func(ctx context.Context, w *complaint.WorkOrder) error
	GetByIDFunc          func(ctx context.Context, id uint) (*complaint.WorkOrder, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*complaint.WorkOrder, error)
	ListByComplaintFunc  func(ctx context.Context, complaintID uint) ([]*complaint.WorkOrder, error)
	CountByComplaintFunc func(ctx context.Context, complaintID uint) (int64, error)
}

func (m *mockWorkOrderRepository) Create(ctx context.Context, w *complaint.WorkOrder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, w *complaint.WorkOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, id uint) (*complaint.WorkOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.WorkOrder, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockWorkOrderRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.WorkOrder, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) CountByComplaint(ctx context.Context, complaintID uint) (int64, error) {
	if m.CountByComplaintFunc != nil {
		return m.CountByComplaintFunc(ctx, complaintID)
	}
	return 0, nil
}

type mockVisitRepository struct {
	CreateFunc           func(ctx context.Context, v *complaint.VisitLog) error
	CheckoutFunc         func(ctx context.Context, v *complaint.VisitLog) error
	GetByIDFunc          func(ctx context.Context, id uint) (*complaint.VisitLog, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*complaint.VisitLog, error)
	ListByComplaintFunc  func(ctx context.Context, complaintID uint) ([]*complaint.VisitLog, error)
}

func (m *mockVisitRepository) Create(ctx context.Context, v *complaint.VisitLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *mockVisitRepository) Checkout(ctx context.Context, v *complaint.VisitLog) error {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, v)
	}
	return nil
}

func (m *mockVisitRepository) GetByID(ctx context.Context, id uint) (*complaint.VisitLog, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVisitRepository) GetByIDForUpdate(ctx context.Context, id uint) (*complaint.VisitLog, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockVisitRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.VisitLog, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID)
	}
	return nil, nil
}

// mockHistoryRepository records appended rows.
type mockHistoryRepository struct {
	AppendFunc          func(ctx context.Context, h *complaint.StatusHistory) error
	ListByComplaintFunc func(ctx context.Context, complaintID uint) ([]*complaint.StatusHistory, error)
	appended            []*complaint.StatusHistory
}

func (m *mockHistoryRepository) Append(ctx context.Context, h *complaint.StatusHistory) error {
	if m.AppendFunc != nil {
		if err := m.AppendFunc(ctx, h); err != nil {
			return err
		}
	}
	m.appended = append(m.appended, h)
	return nil
}

func (m *mockHistoryRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.StatusHistory, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID)
	}
	return m.appended, nil
}

type mockCommentRepository struct {
	CreateFunc          func(ctx context.Context, c *complaint.Comment) error
	ListByComplaintFunc func(ctx context.Context, complaintID uint, includeInternal bool) ([]*complaint.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *complaint.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByComplaint(ctx context.Context, complaintID uint, includeInternal bool) ([]*complaint.Comment, error) {
	if m.ListByComplaintFunc != nil {
		return m.ListByComplaintFunc(ctx, complaintID, includeInternal)
	}
	return nil, nil
}

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, dayKey string) (int64, error)
}

func (m *mockSequenceAllocator) Next(ctx context.Context, dayKey string) (int64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, dayKey)
	}
	return 1, nil
}

type mockCategoryRepository struct {
	CreateFunc    func(ctx context.Context, c *catalog.Category) error
	UpdateFunc    func(ctx context.Context, c *catalog.Category) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Category, error)
	GetByCodeFunc func(ctx context.Context, code string) (*catalog.Category, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*catalog.Category, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByCode(ctx context.Context, code string) (*catalog.Category, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockGuidanceRepository struct {
	UpsertFunc        func(ctx context.Context, g *catalog.GuidanceTemplate) error
	GetByCategoryFunc func(ctx context.Context, categoryID uint) (*catalog.GuidanceTemplate, error)
}

func (m *mockGuidanceRepository) Upsert(ctx context.Context, g *catalog.GuidanceTemplate) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, g)
	}
	return nil
}

func (m *mockGuidanceRepository) GetByCategory(ctx context.Context, categoryID uint) (*catalog.GuidanceTemplate, error) {
	if m.GetByCategoryFunc != nil {
		return m.GetByCategoryFunc(ctx, categoryID)
	}
	return nil, nil
}

type mockUserRepository struct {
	UpsertFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	ListStaffBySiteFunc func(ctx context.Context, siteCode string) ([]*user.User, error)
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ListStaffBySite(ctx context.Context, siteCode string) ([]*user.User, error) {
	if m.ListStaffBySiteFunc != nil {
		return m.ListStaffBySiteFunc(ctx, siteCode)
	}
	return nil, nil
}

// mockPublisher records published events.
type mockPublisher struct {
	PublishFunc func(ctx context.Context, event notification.Event) error
	events      []notification.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event notification.Event) error {
	if m.PublishFunc != nil {
		if err := m.PublishFunc(ctx, event); err != nil {
			return err
		}
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) keys() []notification.EventKey {
	keys := make([]notification.EventKey, 0, len(m.events))
	for _, e := range m.events {
		keys = append(keys, e.Key)
	}
	return keys
}

// mockTxRunner runs fn inline and counts calls.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockObserver struct {
	observed []vo.ComplaintStatus
}

func (m *mockObserver) ObserveTransition(_ *vo.ComplaintStatus, to vo.ComplaintStatus) {
	m.observed = append(m.observed, to)
}

var testLogger = logger.NewNop()

const testSite = "SITE-A"

func residentActor(id uint) user.Actor {
	return user.Actor{UserID: id, Role: user.RoleResident, SiteCode: testSite, SiteName: "Site A", UnitLabel: "101-1203"}
}

func staffActor(id uint) user.Actor {
	return user.Actor{UserID: id, Role: user.RoleStaff, SiteCode: testSite, SiteName: "Site A"}
}

func adminActor(id uint, site string) user.Actor {
	return user.Actor{UserID: id, Role: user.RoleAdmin, SiteCode: site, SiteName: site}
}

func newTestCategory(id uint, scope vo.Scope, active bool) *catalog.Category {
	now := time.Now().UTC()
	c, err := catalog.ReconstructCategory(id, "CAT", "Category", scope, active, 1, now, now)
	if err != nil {
		panic(err)
	}
	return c
}

func newTestUser(id uint, role user.Role, site string, active bool) *user.User {
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, role, "User", "", "", site, site, "", active, now, now)
	if err != nil {
		panic(err)
	}
	return u
}

// newStoredComplaint builds a persisted complaint in the given state.
func newStoredComplaint(id uint, scope vo.Scope, status vo.ComplaintStatus, reporter uint, site string) *complaint.Complaint {
	now := time.Now().UTC().Add(-time.Hour)
	var (
		resolution *vo.ResolutionType
		closedAt   *time.Time
	)
	if scope == vo.ScopePrivate {
		g := vo.ResolutionGuidanceOnly
		resolution = &g
		closedAt = &now
	}
	priority := vo.PriorityNormal
	if scope == vo.ScopeEmergency {
		priority = vo.PriorityUrgent
	}
	c, err := complaint.ReconstructComplaint(
		id, "C-20260212-00001", 1, scope, status, priority, resolution,
		"Leaking pipe", "Water on the floor", "B1 parking",
		site, site, "101-1203", reporter, nil, false, nil, vo.Attachments{},
		3, now, nil, closedAt, now,
	)
	if err != nil {
		panic(err)
	}
	return c
}
