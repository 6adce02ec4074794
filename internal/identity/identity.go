// Derives stable dedupe keys for job postings.
// Priority chain: source-native id -> canonical URL -> company|title slug.

package identity

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	viewIDRegex    = regexp.MustCompile(`/view/[^/]*-(\d{6,})`)
	currentIDRegex = regexp.MustCompile(`currentJobId=(\d{6,})`)
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
)

// ExtractJobID pulls the source-native numeric id out of a posting URL.
// Returns "" when the URL carries no recognizable id.
func ExtractJobID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if m := viewIDRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	if m := currentIDRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// CanonicalURL strips query string, fragment and trailing slash so the same
// posting reached through tracking parameters or protocol variants keys
// identically. Unparseable input degrades to the trimmed raw string.
func CanonicalURL(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimSuffix(s, "/")
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/")
}

// Slug lowercases, folds diacritics away and collapses non-alphanumeric runs
// to single spaces.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)
	folded = strings.ToLower(folded)
	return strings.TrimSpace(nonAlnumRegex.ReplaceAllString(folded, " "))
}

// Key resolves a record to its dedupe key. Pure and total: given any record
// with at least a URL, company or title it returns a non-empty string. An
// empty key means "unresolvable" and callers must not dedupe on it.
func Key(jobURL, company, title string) string {
	if id := ExtractJobID(jobURL); id != "" {
		return id
	}
	if cu := CanonicalURL(jobURL); cu != "" {
		return cu
	}
	if company == "" && title == "" {
		return ""
	}
	return Slug(company) + "|" + Slug(title)
}
