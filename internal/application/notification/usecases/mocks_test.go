package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type mockQueueRepository struct {
	EnqueueFunc       func(ctx context.Context, entry *notification.QueueEntry) error
	GetByIDFunc       func(ctx context.Context, id uint) (*notification.QueueEntry, error)
	ClaimPendingFunc  func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error)
	MarkSentFunc      func(ctx context.Context, id uint, sentAt time.Time) (bool, error)
	MarkFailedFunc    func(ctx context.Context, id uint, errMsg string) (bool, error)
	RequeueFailedFunc func(ctx context.Context, maxAttempts int) (int64, error)
	ListFunc          func(ctx context.Context, filter notification.QueueFilter) ([]*notification.QueueEntry, int64, error)

	mu       sync.Mutex
	enqueued []*notification.QueueEntry
	sent     []uint
	failed   map[uint]string
}

func (m *mockQueueRepository) Enqueue(ctx context.Context, entry *notification.QueueEntry) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enqueued = append(m.enqueued, entry)
	return entry.SetID(uint(len(m.enqueued)))
}

func (m *mockQueueRepository) GetByID(ctx context.Context, id uint) (*notification.QueueEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQueueRepository) ClaimPending(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
	if m.ClaimPendingFunc != nil {
		return m.ClaimPendingFunc(ctx, limit, now, leaseCutoff)
	}
	return nil, nil
}

func (m *mockQueueRepository) MarkSent(ctx context.Context, id uint, sentAt time.Time) (bool, error) {
	m.mu.Lock()
	m.sent = append(m.sent, id)
	m.mu.Unlock()
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, id, sentAt)
	}
	return true, nil
}

func (m *mockQueueRepository) MarkFailed(ctx context.Context, id uint, errMsg string) (bool, error) {
	m.mu.Lock()
	if m.failed == nil {
		m.failed = map[uint]string{}
	}
	m.failed[id] = errMsg
	m.mu.Unlock()
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, id, errMsg)
	}
	return true, nil
}

func (m *mockQueueRepository) RequeueFailed(ctx context.Context, maxAttempts int) (int64, error) {
	if m.RequeueFailedFunc != nil {
		return m.RequeueFailedFunc(ctx, maxAttempts)
	}
	return 0, nil
}

func (m *mockQueueRepository) List(ctx context.Context, filter notification.QueueFilter) ([]*notification.QueueEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockTemplateRepository struct {
	UpsertFunc func(ctx context.Context, t *notification.Template) error
	GetFunc    func(ctx context.Context, eventKey notification.EventKey, channel string) (*notification.Template, error)
	ListFunc   func(ctx context.Context) ([]*notification.Template, error)
}

func (m *mockTemplateRepository) Upsert(ctx context.Context, t *notification.Template) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, t)
	}
	t.SetID(1)
	return nil
}

func (m *mockTemplateRepository) Get(ctx context.Context, eventKey notification.EventKey, channel string) (*notification.Template, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, eventKey, channel)
	}
	return nil, nil
}

func (m *mockTemplateRepository) List(ctx context.Context) ([]*notification.Template, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	users map[uint]*user.User
	staff map[string][]*user.User
	err   error
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserRepository) ListStaffBySite(ctx context.Context, siteCode string) ([]*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.staff[siteCode], nil
}

type mockSender struct {
	err  error
	sent []Message
}

func (m *mockSender) Send(ctx context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type mockDeliveryObserver struct {
	outcomes []string
}

func (m *mockDeliveryObserver) ObserveDelivery(channel string, status notification.Status) {
	m.outcomes = append(m.outcomes, channel+":"+status.String())
}

func testLogger() logger.Interface {
	return logger.NewNop()
}

func newPendingEntry(id uint, key notification.EventKey, channel, recipient string) *notification.QueueEntry {
	complaintID := uint(7)
	entry, err := notification.ReconstructQueueEntry(
		id,
		fmt.Sprintf("evt-%d", id),
		key,
		&complaintID,
		channel,
		recipient,
		key.String(),
		`{"complaintId":7}`,
		map[string]interface{}{"complaintId": 7},
		notification.StatusPending,
		0,
		time.Now().UTC(),
		nil,
		nil,
		"",
	)
	if err != nil {
		panic(err)
	}
	return entry
}

func newTestUser(id uint, role user.Role, site string, active bool) *user.User {
	unit := ""
	if role == user.RoleResident {
		unit = "101-1203"
	}
	u, err := user.ReconstructUser(id, role, fmt.Sprintf("user-%d", id), fmt.Sprintf("u%d@example.com", id), "010-0000-0000", site, "Site", unit, active, time.Now().UTC(), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return u
}
