package complaint

import (
	"fmt"
	"regexp"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const ticketNumberPrefix = "C"

// MaxDailySequence is the largest sequence that fits the five-digit suffix.
const MaxDailySequence = 99999

var ticketNumberPattern = regexp.MustCompile(`^C-[0-9]{8}-[0-9]{5}$`)

// FormatTicketNumber builds C-YYYYMMDD-NNNNN for the UTC day of at.
func FormatTicketNumber(at time.Time, seq int64) (string, error) {
	if seq < 1 || seq > MaxDailySequence {
		return "", fmt.Errorf("ticket sequence %d out of range", seq)
	}
	return fmt.Sprintf("%s-%s-%05d", ticketNumberPrefix, biztime.DayKeyUTC(at), seq), nil
}

// IsValidTicketNumber reports whether s has the C-YYYYMMDD-NNNNN shape.
func IsValidTicketNumber(s string) bool {
	return ticketNumberPattern.MatchString(s)
}
