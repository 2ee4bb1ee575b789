package complaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

func TestWorkOrder_ChangeStatus(t *testing.T) {
	t.Run("dispatch then done", func(t *testing.T) {
		w, err := NewWorkOrder(1, 42, nil, "")
		require.NoError(t, err)
		assert.Equal(t, vo.WorkOrderOpen, w.Status())

		changed, err := w.ChangeStatus(vo.WorkOrderDispatched, nil)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, w.CompletedAt())

		changed, err = w.ChangeStatus(vo.WorkOrderDone, ptr("replaced closer"))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.NotNil(t, w.CompletedAt())
		assert.Equal(t, "replaced closer", w.ResultNote())
	})

	t.Run("same status only updates note", func(t *testing.T) {
		w, err := NewWorkOrder(1, 42, nil, "initial")
		require.NoError(t, err)

		changed, err := w.ChangeStatus(vo.WorkOrderOpen, ptr("parts ordered"))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, vo.WorkOrderOpen, w.Status())
		assert.Equal(t, "parts ordered", w.ResultNote())
	})

	t.Run("final states are final", func(t *testing.T) {
		w, err := NewWorkOrder(1, 42, nil, "")
		require.NoError(t, err)
		assert.True(t, w.IsActive())
		_, err = w.ChangeStatus(vo.WorkOrderCanceled, nil)
		require.NoError(t, err)
		assert.False(t, w.IsActive())

		_, err = w.ChangeStatus(vo.WorkOrderDone, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, vo.WorkOrderCanceled, w.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		w, err := NewWorkOrder(1, 42, nil, "")
		require.NoError(t, err)
		_, err = w.ChangeStatus(vo.WorkOrderStatus("PAUSED"), nil)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("constructor validation", func(t *testing.T) {
		_, err := NewWorkOrder(0, 42, nil, "")
		assert.Error(t, err)
		_, err = NewWorkOrder(1, 0, nil, "")
		assert.Error(t, err)
	})
}

func TestVisitLog_Checkout(t *testing.T) {
	c := newComplaint(t, nil)

	v, err := NewVisitLog(c, 20, vo.VisitReasonFireInspection, "")
	require.NoError(t, err)
	assert.Equal(t, "101-1203", v.UnitLabel())
	assert.False(t, v.IsCheckedOut())

	changed, err := v.Checkout(ptr("extinguisher replaced"))
	require.NoError(t, err)
	assert.True(t, changed)
	first := *v.CheckOutAt()
	assert.False(t, first.Before(v.CheckInAt()))

	restore := biztime.SetClock(func() time.Time { return first.Add(2 * time.Hour) })
	defer restore()

	changed, err = v.Checkout(ptr("second note"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, *v.CheckOutAt())
	assert.Equal(t, "extinguisher replaced", v.ResultNote())
}

func TestVisitLog_CheckoutNeverBeforeCheckIn(t *testing.T) {
	checkIn := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	v, err := ReconstructVisitLog(1, 1, "101", 20, vo.VisitReasonEmergencyInfra, checkIn, nil, "")
	require.NoError(t, err)

	restore := biztime.SetClock(func() time.Time { return checkIn.Add(-time.Minute) })
	defer restore()

	_, err = v.Checkout(nil)
	require.NoError(t, err)
	assert.Equal(t, checkIn, *v.CheckOutAt())
}

func TestNewVisitLog_Validation(t *testing.T) {
	c := newComplaint(t, nil)

	_, err := NewVisitLog(c, 20, vo.VisitReason("CURIOSITY"), "")
	assert.Error(t, err)
	_, err = NewVisitLog(c, 0, vo.VisitReasonFireInspection, "")
	assert.Error(t, err)
	_, err = NewVisitLog(nil, 20, vo.VisitReasonFireInspection, "")
	assert.Error(t, err)
}

func TestNewComment(t *testing.T) {
	cm, err := NewComment(1, 7, "still leaking", false)
	require.NoError(t, err)
	assert.False(t, cm.IsInternal())

	_, err = NewComment(1, 7, "", false)
	assert.Error(t, err)
	_, err = NewComment(0, 7, "x", false)
	assert.Error(t, err)
}

func TestNewStatusHistory(t *testing.T) {
	h, err := NewStatusHistory(1, Transition{To: vo.StatusReceived}, 7, "")
	require.NoError(t, err)
	assert.Nil(t, h.FromStatus())
	assert.Equal(t, vo.StatusReceived, h.ToStatus())

	_, err = NewStatusHistory(1, Transition{To: "BOGUS"}, 7, "")
	assert.Error(t, err)
}

func TestFormatTicketNumber(t *testing.T) {
	day := time.Date(2026, 2, 12, 23, 59, 0, 0, time.UTC)

	no, err := FormatTicketNumber(day, 1)
	require.NoError(t, err)
	assert.Equal(t, "C-20260212-00001", no)
	assert.True(t, IsValidTicketNumber(no))

	// Seoul is already on the next day; numbering follows the UTC day.
	seoul := day.In(time.FixedZone("KST", 9*3600))
	no, err = FormatTicketNumber(seoul, 99999)
	require.NoError(t, err)
	assert.Equal(t, "C-20260212-99999", no)

	_, err = FormatTicketNumber(day, 0)
	assert.Error(t, err)
	_, err = FormatTicketNumber(day, 100000)
	assert.Error(t, err)

	assert.False(t, IsValidTicketNumber("C-2026021-00001"))
	assert.False(t, IsValidTicketNumber("X-20260212-00001"))
}

func TestStats(t *testing.T) {
	s := NewStats()
	assert.Len(t, s.ByStatus, 7)
	assert.Len(t, s.ByScope, 3)
	assert.Nil(t, s.AvgResolutionHours)

	s.SetAverageResolution(3*60*60*1000, 2)
	require.NotNil(t, s.AvgResolutionHours)
	assert.InDelta(t, 1.5, *s.AvgResolutionHours, 1e-9)

	s.SetAverageResolution(0, 0)
	assert.Nil(t, s.AvgResolutionHours)
}
