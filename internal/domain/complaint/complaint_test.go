package complaint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

func validParams() SubmitParams {
	return SubmitParams{
		CategoryID:     3,
		Scope:          vo.ScopeCommon,
		Priority:       vo.PriorityNormal,
		Title:          "Lobby door broken",
		Description:    "The automatic door at building 101 does not close",
		SiteCode:       "SITE-A",
		SiteName:       "Alpha Park",
		UnitLabel:      "101-1203",
		ReporterUserID: 7,
	}
}

func newComplaint(t *testing.T, mutate func(*SubmitParams)) *Complaint {
	t.Helper()
	p := validParams()
	if mutate != nil {
		mutate(&p)
	}
	c, _, err := NewComplaint(p)
	require.NoError(t, err)
	require.NoError(t, c.SetID(1))
	return c
}

func ptr[T any](v T) *T { return &v }

func TestNewComplaint_Common(t *testing.T) {
	c, tr, err := NewComplaint(validParams())
	require.NoError(t, err)

	assert.Equal(t, vo.StatusReceived, c.Status())
	assert.Equal(t, vo.ScopeCommon, c.Scope())
	assert.Nil(t, c.ResolutionType())
	assert.Nil(t, c.ClosedAt())
	assert.Equal(t, 1, c.Version())
	assert.Nil(t, tr.From)
	assert.Equal(t, vo.StatusReceived, tr.To)
}

func TestNewComplaint_PrivateIsResolvedWithGuidance(t *testing.T) {
	c, tr, err := NewComplaint(func() SubmitParams {
		p := validParams()
		p.Scope = vo.ScopePrivate
		p.Priority = vo.PriorityHigh
		return p
	}())
	require.NoError(t, err)

	assert.Equal(t, vo.StatusGuidanceSent, c.Status())
	require.NotNil(t, c.ResolutionType())
	assert.Equal(t, vo.ResolutionGuidanceOnly, *c.ResolutionType())
	assert.NotNil(t, c.ClosedAt())
	assert.Nil(t, tr.From)
	assert.Equal(t, vo.StatusGuidanceSent, tr.To)
}

func TestNewComplaint_EmergencyForcesUrgent(t *testing.T) {
	tests := []struct {
		name      string
		scope     vo.Scope
		emergency bool
	}{
		{"emergency scope requested", vo.ScopeEmergency, false},
		{"emergency path with common scope", vo.ScopeCommon, true},
		{"emergency path with private scope", vo.ScopePrivate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			p.Scope = tt.scope
			p.Priority = vo.PriorityLow
			p.Emergency = tt.emergency

			c, _, err := NewComplaint(p)
			require.NoError(t, err)
			assert.Equal(t, vo.ScopeEmergency, c.Scope())
			assert.Equal(t, vo.PriorityUrgent, c.Priority())
			assert.Equal(t, vo.StatusReceived, c.Status())
		})
	}
}

func TestNewComplaint_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitParams)
		errMsg string
	}{
		{"missing category", func(p *SubmitParams) { p.CategoryID = 0 }, "category"},
		{"bad scope", func(p *SubmitParams) { p.Scope = "OUTSIDE" }, "invalid scope"},
		{"bad priority", func(p *SubmitParams) { p.Priority = "CRITICAL" }, "invalid priority"},
		{"empty title", func(p *SubmitParams) { p.Title = "" }, "title is required"},
		{"long title", func(p *SubmitParams) { p.Title = strings.Repeat("가", 201) }, "title exceeds"},
		{"empty description", func(p *SubmitParams) { p.Description = "" }, "description is required"},
		{"missing site", func(p *SubmitParams) { p.SiteCode = "" }, "site code"},
		{"missing reporter", func(p *SubmitParams) { p.ReporterUserID = 0 }, "reporter"},
		{"visit without reason", func(p *SubmitParams) { p.RequiresVisit = true }, "visit reason is required"},
		{"reason without visit", func(p *SubmitParams) { p.VisitReason = ptr(vo.VisitReasonFireInspection) }, "must be empty"},
		{"bad visit reason", func(p *SubmitParams) {
			p.RequiresVisit = true
			p.VisitReason = ptr(vo.VisitReason("CURIOSITY"))
		}, "invalid visit reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			c, _, err := NewComplaint(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, c)
		})
	}
}

func TestNewComplaint_DefaultPriority(t *testing.T) {
	p := validParams()
	p.Priority = ""
	c, _, err := NewComplaint(p)
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityNormal, c.Priority())
}

func TestComplaint_Triage(t *testing.T) {
	t.Run("common complaint becomes triaged", func(t *testing.T) {
		c := newComplaint(t, nil)
		tr, err := c.Triage(TriageParams{
			Scope:          vo.ScopeCommon,
			Priority:       vo.PriorityHigh,
			ResolutionType: ptr(vo.ResolutionRepair),
		})
		require.NoError(t, err)

		require.NotNil(t, tr.From)
		assert.Equal(t, vo.StatusReceived, *tr.From)
		assert.Equal(t, vo.StatusTriaged, tr.To)
		assert.Equal(t, vo.PriorityHigh, c.Priority())
		assert.Equal(t, vo.ResolutionRepair, *c.ResolutionType())
		assert.NotNil(t, c.TriagedAt())
		assert.Nil(t, c.ClosedAt())
		assert.Equal(t, 2, c.Version())
	})

	t.Run("private triage forces guidance", func(t *testing.T) {
		c := newComplaint(t, nil)
		tr, err := c.Triage(TriageParams{
			Scope:          vo.ScopePrivate,
			Priority:       vo.PriorityNormal,
			ResolutionType: ptr(vo.ResolutionRepair),
		})
		require.NoError(t, err)

		assert.Equal(t, vo.StatusGuidanceSent, tr.To)
		assert.Equal(t, vo.StatusGuidanceSent, c.Status())
		assert.Equal(t, vo.ResolutionGuidanceOnly, *c.ResolutionType())
		assert.NotNil(t, c.ClosedAt())
	})

	t.Run("emergency triage forces urgent", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeEmergency, Priority: vo.PriorityLow})
		require.NoError(t, err)
		assert.Equal(t, vo.PriorityUrgent, c.Priority())
	})

	t.Run("re-triage before assignment", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityLow})
		require.NoError(t, err)
		tr, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityHigh})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusTriaged, *tr.From)
		assert.Equal(t, vo.StatusTriaged, tr.To)
	})

	t.Run("private complaint cannot be re-triaged", func(t *testing.T) {
		c := newComplaint(t, func(p *SubmitParams) { p.Scope = vo.ScopePrivate })
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, vo.ScopePrivate, c.Scope())
		assert.Equal(t, vo.ResolutionGuidanceOnly, *c.ResolutionType())
	})

	t.Run("assigned complaint cannot be triaged", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
		require.NoError(t, err)
		_, err = c.Assign(42, false)
		require.NoError(t, err)
		_, err = c.Triage(TriageParams{Scope: vo.ScopePrivate, Priority: vo.PriorityNormal})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("invalid enums rejected", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: "NOPE", Priority: vo.PriorityNormal})
		assert.Error(t, err)
		_, err = c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: "NOPE"})
		assert.Error(t, err)
		_, err = c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityLow, ResolutionType: ptr(vo.ResolutionType("X"))})
		assert.Error(t, err)
		assert.Equal(t, vo.StatusReceived, c.Status())
	})

	t.Run("visit flag is updated", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{
			Scope:         vo.ScopeCommon,
			Priority:      vo.PriorityNormal,
			RequiresVisit: ptr(true),
			VisitReason:   ptr(vo.VisitReasonNeighborDamage),
		})
		require.NoError(t, err)
		assert.True(t, c.RequiresVisit())
		assert.Equal(t, vo.VisitReasonNeighborDamage, *c.VisitReason())
	})
}

func TestComplaint_Assign(t *testing.T) {
	t.Run("triaged complaint is assigned", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
		require.NoError(t, err)

		tr, err := c.Assign(42, false)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusTriaged, *tr.From)
		assert.Equal(t, vo.StatusAssigned, tr.To)
		assert.Equal(t, uint(42), *c.AssignedToUserID())
	})

	t.Run("private complaint refuses assignment", func(t *testing.T) {
		c := newComplaint(t, func(p *SubmitParams) { p.Scope = vo.ScopePrivate })
		_, err := c.Assign(42, false)
		assert.ErrorIs(t, err, ErrInvalidScope)
		assert.Nil(t, c.AssignedToUserID())
	})

	t.Run("untriaged complaint refuses assignment", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Assign(42, false)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("assigned complaint with active work refuses reassignment", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
		require.NoError(t, err)
		_, err = c.Assign(42, false)
		require.NoError(t, err)

		_, err = c.Assign(43, true)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, uint(42), *c.AssignedToUserID())

		tr, err := c.Assign(43, false)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusAssigned, *tr.From)
		assert.Equal(t, vo.StatusAssigned, tr.To)
		assert.Equal(t, uint(43), *c.AssignedToUserID())
	})

	t.Run("in-progress complaint refuses assignment", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
		require.NoError(t, err)
		_, err = c.Assign(42, false)
		require.NoError(t, err)
		_, ok := c.StartWork()
		require.True(t, ok)

		_, err = c.Assign(43, false)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("zero assignee", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Assign(0, false)
		assert.Error(t, err)
	})
}

func TestComplaint_WorkLifecycle(t *testing.T) {
	c := newComplaint(t, nil)
	_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
	require.NoError(t, err)
	_, err = c.Assign(42, false)
	require.NoError(t, err)

	tr, ok := c.StartWork()
	require.True(t, ok)
	assert.Equal(t, vo.StatusInProgress, tr.To)

	_, ok = c.StartWork()
	assert.False(t, ok)

	tr, ok = c.CompleteWork()
	require.True(t, ok)
	assert.Equal(t, vo.StatusInProgress, *tr.From)
	assert.Equal(t, vo.StatusCompleted, c.Status())
	require.NotNil(t, c.ClosedAt())
	firstClosed := *c.ClosedAt()

	_, ok = c.CompleteWork()
	assert.False(t, ok)

	restore := biztime.SetClock(func() time.Time { return firstClosed.Add(time.Hour) })
	defer restore()

	tr, err = c.Close()
	require.NoError(t, err)
	assert.Equal(t, vo.StatusCompleted, *tr.From)
	assert.Equal(t, vo.StatusClosed, c.Status())
	assert.Equal(t, firstClosed, *c.ClosedAt(), "closed_at is first-write-wins")

	_, err = c.Close()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestComplaint_ReleaseWork(t *testing.T) {
	c := newComplaint(t, nil)
	_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
	require.NoError(t, err)
	_, err = c.Assign(42, false)
	require.NoError(t, err)

	_, ok := c.ReleaseWork()
	assert.False(t, ok, "an assigned complaint is already reassignable")

	_, ok = c.StartWork()
	require.True(t, ok)

	tr, ok := c.ReleaseWork()
	require.True(t, ok)
	assert.Equal(t, vo.StatusInProgress, *tr.From)
	assert.Equal(t, vo.StatusAssigned, tr.To)
	assert.Nil(t, c.ClosedAt())
}

func TestComplaint_CompleteFromAssigned(t *testing.T) {
	c := newComplaint(t, nil)
	_, err := c.Triage(TriageParams{Scope: vo.ScopeCommon, Priority: vo.PriorityNormal})
	require.NoError(t, err)
	_, err = c.Assign(42, false)
	require.NoError(t, err)

	tr, ok := c.CompleteWork()
	require.True(t, ok)
	assert.Equal(t, vo.StatusAssigned, *tr.From)
	assert.Equal(t, vo.StatusCompleted, tr.To)
}

func TestComplaint_Close(t *testing.T) {
	t.Run("guidance sent can be closed", func(t *testing.T) {
		c := newComplaint(t, func(p *SubmitParams) { p.Scope = vo.ScopePrivate })
		closedAt := *c.ClosedAt()

		tr, err := c.Close()
		require.NoError(t, err)
		assert.Equal(t, vo.StatusGuidanceSent, *tr.From)
		assert.Equal(t, closedAt, *c.ClosedAt())
	})

	t.Run("received cannot be closed", func(t *testing.T) {
		c := newComplaint(t, nil)
		_, err := c.Close()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, c.ClosedAt())
	})
}

func TestComplaint_VisibleTo(t *testing.T) {
	c := newComplaint(t, nil)

	tests := []struct {
		name  string
		actor user.Actor
		want  bool
	}{
		{"reporter", user.Actor{UserID: 7, Role: user.RoleResident, SiteCode: "SITE-A"}, true},
		{"neighbor on same site", user.Actor{UserID: 8, Role: user.RoleResident, SiteCode: "SITE-A"}, false},
		{"staff same site", user.Actor{UserID: 20, Role: user.RoleStaff, SiteCode: "SITE-A"}, true},
		{"admin other site", user.Actor{UserID: 21, Role: user.RoleAdmin, SiteCode: "SITE-B"}, false},
		{"super admin", user.Actor{UserID: 1, Role: user.RoleSuperAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VisibleTo(tt.actor))
		})
	}
}

func TestReconstructComplaint_RejectsBadTicketNumber(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructComplaint(1, "TKT-1", 1, vo.ScopeCommon, vo.StatusReceived, vo.PriorityNormal, nil,
		"t", "d", "", "A", "", "", 1, nil, false, nil, nil, 1, now, nil, nil, now)
	assert.Error(t, err)

	c, err := ReconstructComplaint(1, "C-20260212-00001", 1, vo.ScopeCommon, vo.StatusReceived, vo.PriorityNormal, nil,
		"t", "d", "", "A", "", "", 1, nil, false, nil, nil, 1, now, nil, nil, now)
	require.NoError(t, err)
	assert.Empty(t, c.Attachments())
}
