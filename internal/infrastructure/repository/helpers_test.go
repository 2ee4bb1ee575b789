package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/infrastructure/database/dbtest"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type testRepos struct {
	db         *gorm.DB
	complaints complaint.Repository
	workOrders complaint.WorkOrderRepository
	visits     complaint.VisitRepository
	history    complaint.HistoryRepository
	comments   complaint.CommentRepository
	categories catalog.CategoryRepository
	sequence   complaint.SequenceAllocator
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	database := dbtest.NewSQLite(t)
	log := logger.NewNop()
	return &testRepos{
		db:         database,
		complaints: NewComplaintRepository(database, log),
		workOrders: NewWorkOrderRepository(database, log),
		visits:     NewVisitLogRepository(database, log),
		history:    NewStatusHistoryRepository(database),
		comments:   NewComplaintCommentRepository(database),
		categories: NewCategoryRepository(database),
		sequence:   NewDBSequenceAllocator(database),
	}
}

var ticketCounter int64

func (r *testRepos) category(t *testing.T, code string, scope vo.Scope) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(code, "Category "+code, scope, 0)
	require.NoError(t, err)
	require.NoError(t, r.categories.Create(context.Background(), c))
	return c
}

func (r *testRepos) submit(t *testing.T, site string, reporter uint, scope vo.Scope) *complaint.Complaint {
	t.Helper()
	ctx := context.Background()

	cat, err := r.categories.GetByCode(ctx, "GENERAL")
	require.NoError(t, err)
	if cat == nil {
		cat = r.category(t, "GENERAL", vo.ScopeCommon)
	}

	c, _, err := complaint.NewComplaint(complaint.SubmitParams{
		CategoryID:     cat.ID(),
		Scope:          scope,
		Title:          "Leaking pipe",
		Description:    "Water on the floor",
		SiteCode:       site,
		SiteName:       "Site " + site,
		UnitLabel:      "101-1203",
		ReporterUserID: reporter,
	})
	require.NoError(t, err)

	ticketCounter++
	ticketNo, err := complaint.FormatTicketNumber(c.CreatedAt(), ticketCounter)
	require.NoError(t, err)
	require.NoError(t, c.SetTicketNo(ticketNo))
	require.NoError(t, r.complaints.Create(ctx, c))
	return c
}
