// Package complaint contains the complaint aggregate, its sub-entities
// (work orders, visit logs, comments, status history) and the state machine
// that ties them together.
package complaint

import (
	"fmt"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const (
	MaxTitleLength          = 200
	MaxDescriptionLength    = 5000
	MaxLocationDetailLength = 200
)

// Transition describes one status change. From is nil for the first entry.
type Transition struct {
	From *vo.ComplaintStatus
	To   vo.ComplaintStatus
}

type Complaint struct {
	id               uint
	ticketNo         string
	categoryID       uint
	scope            vo.Scope
	status           vo.ComplaintStatus
	priority         vo.Priority
	resolutionType   *vo.ResolutionType
	title            string
	description      string
	locationDetail   string
	siteCode         string
	siteName         string
	unitLabel        string
	reporterUserID   uint
	assignedToUserID *uint
	requiresVisit    bool
	visitReason      *vo.VisitReason
	attachments      vo.Attachments
	version          int
	createdAt        time.Time
	triagedAt        *time.Time
	closedAt         *time.Time
	updatedAt        time.Time
}

// SubmitParams carries a validated submission.
type SubmitParams struct {
	CategoryID     uint
	Scope          vo.Scope
	Priority       vo.Priority
	Title          string
	Description    string
	LocationDetail string
	SiteCode       string
	SiteName       string
	UnitLabel      string
	ReporterUserID uint
	RequiresVisit  bool
	VisitReason    *vo.VisitReason
	Attachments    vo.Attachments
	// Emergency forces scope EMERGENCY regardless of the requested scope.
	Emergency bool
}

// NewComplaint creates a complaint and returns it with its initial transition.
// PRIVATE submissions are resolved immediately with guidance; EMERGENCY
// submissions are always URGENT.
func NewComplaint(p SubmitParams) (*Complaint, Transition, error) {
	if p.Emergency {
		p.Scope = vo.ScopeEmergency
	}
	if p.Priority == "" {
		p.Priority = vo.PriorityNormal
	}
	if err := validateSubmission(p); err != nil {
		return nil, Transition{}, err
	}

	now := biztime.NowUTC()
	c := &Complaint{
		categoryID:     p.CategoryID,
		scope:          p.Scope,
		status:         vo.StatusReceived,
		priority:       p.Priority,
		title:          p.Title,
		description:    p.Description,
		locationDetail: p.LocationDetail,
		siteCode:       p.SiteCode,
		siteName:       p.SiteName,
		unitLabel:      p.UnitLabel,
		reporterUserID: p.ReporterUserID,
		attachments:    p.Attachments,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}
	if c.attachments == nil {
		c.attachments = vo.Attachments{}
	}
	if err := c.setVisit(p.RequiresVisit, p.VisitReason); err != nil {
		return nil, Transition{}, err
	}

	c.applyScopeRules(now)

	return c, Transition{To: c.status}, nil
}

func validateSubmission(p SubmitParams) error {
	if p.CategoryID == 0 {
		return fmt.Errorf("category is required")
	}
	if !p.Scope.IsValid() {
		return fmt.Errorf("invalid scope: %s", p.Scope)
	}
	if !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", p.Priority)
	}
	if len(p.Title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len([]rune(p.Title)) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(p.Description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len([]rune(p.Description)) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if len([]rune(p.LocationDetail)) > MaxLocationDetailLength {
		return fmt.Errorf("location detail exceeds maximum length of %d characters", MaxLocationDetailLength)
	}
	if p.SiteCode == "" {
		return fmt.Errorf("site code is required")
	}
	if p.ReporterUserID == 0 {
		return fmt.Errorf("reporter is required")
	}
	return nil
}

// ReconstructComplaint rebuilds a complaint from persistence.
func ReconstructComplaint(
	id uint,
	ticketNo string,
	categoryID uint,
	scope vo.Scope,
	status vo.ComplaintStatus,
	priority vo.Priority,
	resolutionType *vo.ResolutionType,
	title, description, locationDetail string,
	siteCode, siteName, unitLabel string,
	reporterUserID uint,
	assignedToUserID *uint,
	requiresVisit bool,
	visitReason *vo.VisitReason,
	attachments vo.Attachments,
	version int,
	createdAt time.Time,
	triagedAt, closedAt *time.Time,
	updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !IsValidTicketNumber(ticketNo) {
		return nil, fmt.Errorf("invalid ticket number: %s", ticketNo)
	}
	if !scope.IsValid() {
		return nil, fmt.Errorf("invalid scope: %s", scope)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if attachments == nil {
		attachments = vo.Attachments{}
	}

	return &Complaint{
		id:               id,
		ticketNo:         ticketNo,
		categoryID:       categoryID,
		scope:            scope,
		status:           status,
		priority:         priority,
		resolutionType:   resolutionType,
		title:            title,
		description:      description,
		locationDetail:   locationDetail,
		siteCode:         siteCode,
		siteName:         siteName,
		unitLabel:        unitLabel,
		reporterUserID:   reporterUserID,
		assignedToUserID: assignedToUserID,
		requiresVisit:    requiresVisit,
		visitReason:      visitReason,
		attachments:      attachments,
		version:          version,
		createdAt:        createdAt,
		triagedAt:        triagedAt,
		closedAt:         closedAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Complaint) ID() uint { return c.id }
func (c *Complaint) TicketNo() string { return c.ticketNo }
func (c *Complaint) CategoryID() uint { return c.categoryID }
func (c *Complaint) Scope() vo.Scope { return c.scope }
func (c *Complaint) Status() vo.ComplaintStatus { return c.status }
func (c *Complaint) Priority() vo.Priority { return c.priority }
func (c *Complaint) ResolutionType() *vo.ResolutionType { return c.resolutionType }
func (c *Complaint) Title() string { return c.title }
func (c *Complaint) Description() string { return c.description }
func (c *Complaint) LocationDetail() string { return c.locationDetail }
func (c *Complaint) SiteCode() string { return c.siteCode }
func (c *Complaint) SiteName() string { return c.siteName }
func (c *Complaint) UnitLabel() string { return c.unitLabel }
func (c *Complaint) ReporterUserID() uint { return c.reporterUserID }
func (c *Complaint) AssignedToUserID() *uint { return c.assignedToUserID }
func (c *Complaint) RequiresVisit() bool { return c.requiresVisit }
func (c *Complaint) VisitReason() *vo.VisitReason { return c.visitReason }
func (c *Complaint) Attachments() vo.Attachments { return c.attachments.Strings() }
func (c *Complaint) Version() int { return c.version }
func (c *Complaint) CreatedAt() time.Time { return c.createdAt }
func (c *Complaint) TriagedAt() *time.Time { return c.triagedAt }
func (c *Complaint) ClosedAt() *time.Time { return c.closedAt }
func (c *Complaint) UpdatedAt() time.Time { return c.updatedAt }

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Complaint) SetTicketNo(ticketNo string) error {
	if c.ticketNo != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if !IsValidTicketNumber(ticketNo) {
		return fmt.Errorf("invalid ticket number: %s", ticketNo)
	}
	c.ticketNo = ticketNo
	return nil
}

// TriageParams carries an admin's classification decision.
type TriageParams struct {
	Scope          vo.Scope
	Priority       vo.Priority
	ResolutionType *vo.ResolutionType
	// RequiresVisit leaves the visit flag unchanged when nil.
	RequiresVisit *bool
	VisitReason   *vo.VisitReason
}

// Triage confirms or corrects scope, priority and resolution path. Only
// complaints that have not been assigned yet can be triaged.
func (c *Complaint) Triage(p TriageParams) (Transition, error) {
	if !p.Scope.IsValid() {
		return Transition{}, fmt.Errorf("invalid scope: %s", p.Scope)
	}
	if !p.Priority.IsValid() {
		return Transition{}, fmt.Errorf("invalid priority: %s", p.Priority)
	}
	if p.ResolutionType != nil && !p.ResolutionType.IsValid() {
		return Transition{}, fmt.Errorf("invalid resolution type: %s", *p.ResolutionType)
	}
	if !c.status.IsTriageable() {
		return Transition{}, fmt.Errorf("%w: cannot triage complaint in status %s", ErrInvalidTransition, c.status)
	}

	requiresVisit, visitReason := c.requiresVisit, c.visitReason
	if p.RequiresVisit != nil {
		requiresVisit, visitReason = *p.RequiresVisit, p.VisitReason
	}
	if err := c.setVisit(requiresVisit, visitReason); err != nil {
		return Transition{}, err
	}

	from := c.status
	now := biztime.NowUTC()

	c.scope = p.Scope
	c.priority = p.Priority
	if p.ResolutionType != nil {
		rt := *p.ResolutionType
		c.resolutionType = &rt
	}
	c.status = vo.StatusTriaged
	c.applyScopeRules(now)
	c.triagedAt = &now
	c.touch(now)

	return Transition{From: &from, To: c.status}, nil
}

// Assign hands the complaint to a staff member. The caller creates the work
// order in the same unit of work. An ASSIGNED complaint can only be
// reassigned once none of its work orders is still open or dispatched.
func (c *Complaint) Assign(assigneeUserID uint, hasActiveWork bool) (Transition, error) {
	if assigneeUserID == 0 {
		return Transition{}, fmt.Errorf("assignee is required")
	}
	if !c.scope.AllowsOnSiteWork() {
		return Transition{}, fmt.Errorf("%w: work orders are not allowed for %s complaints", ErrInvalidScope, c.scope)
	}
	if !c.status.IsAssignable() || !c.status.CanTransitionTo(vo.StatusAssigned) {
		return Transition{}, fmt.Errorf("%w: cannot assign complaint in status %s", ErrInvalidTransition, c.status)
	}
	if c.status == vo.StatusAssigned && hasActiveWork {
		return Transition{}, fmt.Errorf("%w: complaint already has an active work order", ErrInvalidTransition)
	}

	from := c.status
	c.assignedToUserID = &assigneeUserID
	c.status = vo.StatusAssigned
	c.touch(biztime.NowUTC())

	return Transition{From: &from, To: c.status}, nil
}

// StartWork moves an assigned complaint to IN_PROGRESS. It reports false
// when the complaint is not in ASSIGNED.
func (c *Complaint) StartWork() (Transition, bool) {
	if c.status != vo.StatusAssigned {
		return Transition{}, false
	}
	from := c.status
	c.status = vo.StatusInProgress
	c.touch(biztime.NowUTC())
	return Transition{From: &from, To: c.status}, true
}

// ReleaseWork returns an IN_PROGRESS complaint to ASSIGNED after its last
// active work order was canceled, so it can be reassigned. It reports false
// when the complaint is not in progress.
func (c *Complaint) ReleaseWork() (Transition, bool) {
	if c.status != vo.StatusInProgress {
		return Transition{}, false
	}
	from := c.status
	c.status = vo.StatusAssigned
	c.touch(biztime.NowUTC())
	return Transition{From: &from, To: c.status}, true
}

// CompleteWork moves an assigned or in-progress complaint to COMPLETED and
// stamps closed_at unless it is already set. It reports false when the
// current status does not allow completion.
func (c *Complaint) CompleteWork() (Transition, bool) {
	if !c.status.CanTransitionTo(vo.StatusCompleted) {
		return Transition{}, false
	}
	from := c.status
	now := biztime.NowUTC()
	c.status = vo.StatusCompleted
	c.stampClosed(now)
	c.touch(now)
	return Transition{From: &from, To: c.status}, true
}

// Close finalizes a completed complaint or one resolved with guidance.
func (c *Complaint) Close() (Transition, error) {
	if !c.status.CanTransitionTo(vo.StatusClosed) {
		return Transition{}, fmt.Errorf("%w: cannot close complaint in status %s", ErrInvalidTransition, c.status)
	}
	from := c.status
	now := biztime.NowUTC()
	c.status = vo.StatusClosed
	c.stampClosed(now)
	c.touch(now)
	return Transition{From: &from, To: c.status}, nil
}

// VisibleTo reports whether the actor may address this complaint.
func (c *Complaint) VisibleTo(actor user.Actor) bool {
	if actor.IsResident() {
		return c.reporterUserID == actor.UserID
	}
	return actor.CanSeeSite(c.siteCode)
}

// applyScopeRules enforces the scope invariants: PRIVATE is resolved with
// guidance immediately, EMERGENCY is always URGENT.
func (c *Complaint) applyScopeRules(now time.Time) {
	switch {
	case c.scope.IsPrivate():
		guidance := vo.ResolutionGuidanceOnly
		c.resolutionType = &guidance
		c.status = vo.StatusGuidanceSent
		c.stampClosed(now)
	case c.scope.IsEmergency():
		c.priority = vo.PriorityUrgent
	}
}

func (c *Complaint) setVisit(requires bool, reason *vo.VisitReason) error {
	if !requires {
		if reason != nil {
			return fmt.Errorf("visit reason must be empty when no visit is required")
		}
		c.requiresVisit = false
		c.visitReason = nil
		return nil
	}
	if reason == nil {
		return fmt.Errorf("visit reason is required when a visit is required")
	}
	if !reason.IsValid() {
		return fmt.Errorf("invalid visit reason: %s", *reason)
	}
	r := *reason
	c.requiresVisit = true
	c.visitReason = &r
	return nil
}

func (c *Complaint) stampClosed(now time.Time) {
	if c.closedAt == nil {
		t := now
		c.closedAt = &t
	}
}

func (c *Complaint) touch(now time.Time) {
	c.updatedAt = now
	c.version++
}
