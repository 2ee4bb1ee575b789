package complaint

import (
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
)

// Stats is a read-side rollup of complaints.
type Stats struct {
	TotalCount         int64
	ByStatus           map[vo.ComplaintStatus]int64
	ByScope            map[vo.Scope]int64
	DelayedCount       int64
	AvgResolutionHours *float64
}

// NewStats returns stats with every status and scope present at zero.
func NewStats() *Stats {
	s := &Stats{
		ByStatus: make(map[vo.ComplaintStatus]int64, len(vo.AllStatuses())),
		ByScope:  make(map[vo.Scope]int64, len(vo.AllScopes())),
	}
	for _, st := range vo.AllStatuses() {
		s.ByStatus[st] = 0
	}
	for _, sc := range vo.AllScopes() {
		s.ByScope[sc] = 0
	}
	return s
}

// SetAverageResolution derives the mean resolution time from a total in
// milliseconds over count closed complaints. It leaves the average nil when
// nothing is closed.
func (s *Stats) SetAverageResolution(totalMillis int64, count int64) {
	if count <= 0 {
		s.AvgResolutionHours = nil
		return
	}
	hours := float64(totalMillis) / float64(count) / float64(60*60*1000)
	s.AvgResolutionHours = &hours
}
