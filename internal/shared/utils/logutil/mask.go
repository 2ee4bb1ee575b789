// Package logutil keeps personal data out of log lines.
package logutil

import "strings"

const maskedPrefixLen = 3

// MaskContact hides most of an email address or phone number. For an email
// the domain stays visible so delivery problems can still be grouped.
func MaskContact(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	local, domain, isEmail := strings.Cut(s, "@")
	masked := maskPrefix(local)
	if isEmail {
		return masked + "@" + domain
	}
	return masked
}

func maskPrefix(s string) string {
	r := []rune(s)
	if len(r) <= maskedPrefixLen {
		return strings.Repeat("*", len(r))
	}
	return string(r[:maskedPrefixLen]) + strings.Repeat("*", len(r)-maskedPrefixLen)
}
