package valueobjects

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultMaxAttachments      = 10
	DefaultMaxAttachmentLength = 500
)

// Attachments is a bounded list of http(s) URLs.
type Attachments []string

// NewAttachments validates every URL and rejects the whole list on the first
// violation. Limits <= 0 fall back to the defaults.
func NewAttachments(urls []string, maxCount, maxLength int) (Attachments, error) {
	if maxCount <= 0 {
		maxCount = DefaultMaxAttachments
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxAttachmentLength
	}
	if len(urls) > maxCount {
		return nil, fmt.Errorf("at most %d attachments are allowed, got %d", maxCount, len(urls))
	}

	result := make(Attachments, 0, len(urls))
	for i, raw := range urls {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, fmt.Errorf("attachment %d is empty", i)
		}
		if len(raw) > maxLength {
			return nil, fmt.Errorf("attachment %d exceeds %d characters", i, maxLength)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("attachment %d is not a valid URL: %w", i, err)
		}
		scheme := strings.ToLower(u.Scheme)
		if scheme != "http" && scheme != "https" {
			return nil, fmt.Errorf("attachment %d must use http or https", i)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("attachment %d has no host", i)
		}
		result = append(result, raw)
	}
	return result, nil
}

func (a Attachments) Strings() []string {
	out := make([]string, len(a))
	copy(out, a)
	return out
}
