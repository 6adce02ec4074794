package filter

import (
	"regexp"
	"strings"
)

var remoteRegex = regexp.MustCompile(`(?i)remote|work\s*from\s*home|wfh`)

// QuickLocationOK is the pre-filter geography check using only the fields a
// raw listing already has: location text or title suggests India or remote.
func QuickLocationOK(location, title string) bool {
	loc := strings.ToLower(location)
	t := strings.ToLower(title)
	return strings.Contains(loc, "india") || strings.Contains(loc, "remote") || strings.Contains(t, "remote")
}

// LocationOK is the strict geography check, which may also find "remote"
// stated only in the description body.
func LocationOK(location, title, description string) bool {
	loc := strings.ToLower(location)
	if strings.Contains(loc, "india") {
		return true
	}
	return strings.Contains(loc, "remote") ||
		strings.Contains(strings.ToLower(title), "remote") ||
		remoteRegex.MatchString(description)
}

// IsRemoteText reports whether the location or description claims remote
// work, for the is_remote output column.
func IsRemoteText(location, description string) bool {
	return remoteRegex.MatchString(location) || remoteRegex.MatchString(description)
}
