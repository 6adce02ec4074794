package filter

import (
	"regexp"
	"strings"
)

// Senior-experience patterns. Any hit excludes the record, and exclusion
// takes precedence over junior phrasing: a requisition can say "junior" in
// the title and still demand a senior total elsewhere.
var seniorExperienceRegexes = []*regexp.Regexp{
	regexp.MustCompile(`\b2\s*(\+|plus|or\s*more|and\s*above|min(imum)?|at\s*least)\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b1\s*(?:-|–|\s*to\s*)\s*[3-9]\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b([3-9]|1[0-9])\s*(\+|plus)?\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b(min|minimum|at\s*least)\s*([3-9]|1[0-9])\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b([3-9]|1[0-9])\s*-\s*\d+\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\bexperience\s*[:\-]?\s*([3-9]|1[0-9])\s*(year|yr|yrs|years)\b`),
}

// Explicit junior/fresher signals (0–2 years).
var juniorExperienceRegexes = []*regexp.Regexp{
	regexp.MustCompile(`\bfresher(s)?\b`),
	regexp.MustCompile(`\bgraduate(s)?\b`),
	regexp.MustCompile(`\bentry[-\s]?level\b`),
	regexp.MustCompile(`\b0\s*(?:-|–|\s*to\s*)\s*[12]\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b1\s*(?:-|–|\s*to\s*)\s*2\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\bup\s*to\s*2\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\bupto\s*2\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\bunder\s*2\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\bless\s*than\s*2\s*(year|yr|yrs|years)\b`),
	regexp.MustCompile(`\b(6|12)\s*(months|mos|mo)\b`),
	regexp.MustCompile(`\b0\s*(year|yr|yrs|years)\b`),
}

// ExperienceAllowed classifies the experience window stated in text.
// A senior pattern excludes; a junior pattern accepts; when neither matches
// the record is accepted by default — absence of a stated requirement is not
// grounds for exclusion (the source's experience facet already narrowed the
// pool). Tightening that default would shift recall/precision, so it stays.
func ExperienceAllowed(text string) bool {
	s := strings.ToLower(text)
	for _, re := range seniorExperienceRegexes {
		if re.MatchString(s) {
			return false
		}
	}
	for _, re := range juniorExperienceRegexes {
		if re.MatchString(s) {
			return true
		}
	}
	return true
}
