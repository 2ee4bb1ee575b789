package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

func TestComplaintRepository_CreateAndGet(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created := repos.submit(t, "SITE-A", 7, vo.ScopeCommon)
	require.NotZero(t, created.ID())

	got, err := repos.complaints.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.TicketNo(), got.TicketNo())
	assert.Equal(t, vo.StatusReceived, got.Status())
	assert.Equal(t, vo.PriorityNormal, got.Priority())
	assert.Equal(t, "SITE-A", got.SiteCode())
	assert.Equal(t, 1, got.Version())
	assert.Empty(t, got.Attachments())
	assert.Nil(t, got.ClosedAt())

	missing, err := repos.complaints.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestComplaintRepository_PrivateRoundTrip(t *testing.T) {
	repos := newTestRepos(t)

	created := repos.submit(t, "SITE-A", 7, vo.ScopePrivate)

	got, err := repos.complaints.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusGuidanceSent, got.Status())
	require.NotNil(t, got.ResolutionType())
	assert.Equal(t, vo.ResolutionGuidanceOnly, *got.ResolutionType())
	assert.NotNil(t, got.ClosedAt())
}

func TestComplaintRepository_UpdateIsVersionGuarded(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	c := repos.submit(t, "SITE-A", 7, vo.ScopeCommon)
	before := c.Version()

	_, err := c.Triage(complaint.TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityHigh})
	require.NoError(t, err)
	require.NoError(t, repos.complaints.Update(ctx, c, before))

	stored, err := repos.complaints.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusTriaged, stored.Status())
	assert.Equal(t, vo.PriorityHigh, stored.Priority())
	assert.NotNil(t, stored.TriagedAt())

	// a writer holding the old version loses
	_, err = c.Assign(3, false)
	require.NoError(t, err)
	err = repos.complaints.Update(ctx, c, before)
	assert.True(t, errors.IsConflictError(err))
}

func TestComplaintRepository_CheckConstraints(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	cat := repos.category(t, "PLUMBING", vo.ScopeCommon)
	now := biztime.ToMillis(time.Now())

	base := func(ticket string) models.ComplaintModel {
		return models.ComplaintModel{
			TicketNo:       ticket,
			CategoryID:     cat.ID(),
			Scope:          vo.ScopeCommon.String(),
			Status:         vo.StatusReceived.String(),
			Priority:       vo.PriorityNormal.String(),
			Title:          "t",
			Description:    "d",
			SiteCode:       "SITE-A",
			ReporterUserID: 1,
			Version:        1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	t.Run("emergency must be urgent", func(t *testing.T) {
		m := base("C-20250101-00001")
		m.Scope = vo.ScopeEmergency.String()
		m.Priority = vo.PriorityHigh.String()
		err := repos.db.WithContext(ctx).Create(&m).Error
		assert.True(t, errors.IsValidationError(translateWriteError(err, "insert")))
	})

	t.Run("private must be guidance only", func(t *testing.T) {
		m := base("C-20250101-00002")
		m.Scope = vo.ScopePrivate.String()
		err := repos.db.WithContext(ctx).Create(&m).Error
		assert.Error(t, err)
	})

	t.Run("visit reason requires the flag", func(t *testing.T) {
		m := base("C-20250101-00003")
		reason := vo.VisitReasonFireInspection.String()
		m.VisitReason = &reason
		err := repos.db.WithContext(ctx).Create(&m).Error
		assert.Error(t, err)
	})

	t.Run("ticket number format", func(t *testing.T) {
		m := base("C-2025-1")
		err := repos.db.WithContext(ctx).Create(&m).Error
		assert.Error(t, err)
	})

	t.Run("valid row passes", func(t *testing.T) {
		m := base("C-20250101-00004")
		require.NoError(t, repos.db.WithContext(ctx).Create(&m).Error)
	})
}

func TestComplaintRepository_ListFilters(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	repos.submit(t, "SITE-A", 1, vo.ScopeCommon)
	repos.submit(t, "SITE-A", 2, vo.ScopePrivate)
	repos.submit(t, "SITE-B", 1, vo.ScopeEmergency)
	last := repos.submit(t, "SITE-A", 1, vo.ScopeCommon)

	all, total, err := repos.complaints.List(ctx, complaint.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)
	assert.Equal(t, last.ID(), all[0].ID(), "newest first")

	siteA, total, err := repos.complaints.List(ctx, complaint.ListFilter{SiteCode: "SITE-A"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, c := range siteA {
		assert.Equal(t, "SITE-A", c.SiteCode())
	}

	reporter := uint(1)
	mine, total, err := repos.complaints.List(ctx, complaint.ListFilter{ReporterUserID: &reporter})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, mine, 3)

	private := vo.ScopePrivate
	priv, _, err := repos.complaints.List(ctx, complaint.ListFilter{Scope: &private})
	require.NoError(t, err)
	require.Len(t, priv, 1)
	assert.Equal(t, vo.StatusGuidanceSent, priv[0].Status())

	paged, total, err := repos.complaints.List(ctx, complaint.ListFilter{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, paged, 1)
}

func TestComplaintRepository_Stats(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		repos := newTestRepos(t)

		stats, err := repos.complaints.Stats(context.Background(), complaint.StatsFilter{DelayedBefore: time.Now()})
		require.NoError(t, err)
		assert.Zero(t, stats.TotalCount)
		assert.Zero(t, stats.DelayedCount)
		assert.Nil(t, stats.AvgResolutionHours)
		assert.Equal(t, int64(0), stats.ByStatus[vo.StatusReceived])
		assert.Equal(t, int64(0), stats.ByScope[vo.ScopePrivate])
	})

	t.Run("counts delayed and resolution", func(t *testing.T) {
		repos := newTestRepos(t)
		ctx := context.Background()

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		restore := biztime.SetClock(func() time.Time { return start })
		old := repos.submit(t, "SITE-A", 1, vo.ScopeCommon)
		restore()

		closedStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
		restore = biztime.SetClock(func() time.Time { return closedStart })
		priv := repos.submit(t, "SITE-A", 1, vo.ScopePrivate)
		restore()

		repos.submit(t, "SITE-B", 1, vo.ScopeCommon)

		// two hours from creation to closure
		require.NoError(t, repos.db.Model(&models.ComplaintModel{}).
			Where("id = ?", priv.ID()).
			Update("closed_at", biztime.ToMillis(closedStart.Add(2*time.Hour))).Error)

		stats, err := repos.complaints.Stats(ctx, complaint.StatsFilter{
			SiteCode:      "SITE-A",
			DelayedBefore: start.Add(time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2), stats.TotalCount)
		assert.Equal(t, int64(1), stats.ByStatus[vo.StatusReceived])
		assert.Equal(t, int64(1), stats.ByStatus[vo.StatusGuidanceSent])
		assert.Equal(t, int64(1), stats.ByScope[vo.ScopeCommon])
		assert.Equal(t, int64(1), stats.ByScope[vo.ScopePrivate])
		assert.Equal(t, int64(1), stats.DelayedCount, "only %s is old and open", old.TicketNo())
		require.NotNil(t, stats.AvgResolutionHours)
		assert.InDelta(t, 2.0, *stats.AvgResolutionHours, 0.001)
	})
}
