package notification

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	recipientUserPrefix = "user:"
	recipientSitePrefix = "site:"
)

// UserRecipient addresses a single profile.
func UserRecipient(userID uint) string {
	return recipientUserPrefix + strconv.FormatUint(uint64(userID), 10)
}

// SiteRecipient addresses the staff of a site.
func SiteRecipient(siteCode string) string {
	return recipientSitePrefix + siteCode
}

// ParseRecipient splits a recipient into either a user ID or a site code.
func ParseRecipient(r string) (userID uint, siteCode string, err error) {
	switch {
	case strings.HasPrefix(r, recipientUserPrefix):
		n, perr := strconv.ParseUint(strings.TrimPrefix(r, recipientUserPrefix), 10, 64)
		if perr != nil || n == 0 {
			return 0, "", fmt.Errorf("invalid user recipient: %s", r)
		}
		return uint(n), "", nil
	case strings.HasPrefix(r, recipientSitePrefix):
		code := strings.TrimPrefix(r, recipientSitePrefix)
		if code == "" {
			return 0, "", fmt.Errorf("invalid site recipient: %s", r)
		}
		return 0, code, nil
	default:
		return 0, "", fmt.Errorf("unknown recipient: %s", r)
	}
}
