// Gates applied to search-engine results before any enrichment fetch:
// aggregator blocklist, careers/ATS URL shape, and fresher token screening.

package filter

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultBlockedDomains are the big aggregators we skip — we want ATS and
// company career pages, not listings we already collect elsewhere.
var DefaultBlockedDomains = []string{
	"linkedin.", "indeed.", "naukri.", "glassdoor.", "shine.", "bayt.",
	"adzuna.", "apna.", "prosple.", "instahyre.", "cutshort.", "angel.co",
	"wellfound", "timesjobs.", "foundit.", "monster.", "ziprecruiter.",
	"remoterocketship.",
}

var atsHosts = []string{
	"boards.greenhouse.io", "jobs.lever.co", "myworkdayjobs.com",
	"jobs.ashbyhq.com", "smartrecruiters.com", "jobs.icims.com",
	"taleo.net", "successfactors.com", "oraclecloud.com",
	"apply.workable.com", "bamboohr.com", "recruitee.com",
	"jobs.jobvite.com", "pinpoint.xyz", "teamtailor.com",
	"breezy.hr", "eightfold.ai",
}

var careersPathRegex = regexp.MustCompile(`(?i)/careers?/|/jobs?/|/job/`)

var fresherIncludeTokens = []string{
	"fresher", "freshers", "graduate", "trainee", "entry level", "entry-level",
	"0-1 year", "0 to 1 year", "0–1 year", "0-2 year", "0 to 2 year", "0–2 year",
	"junior", "intern",
}

var fresherExcludeTokens = []string{
	"senior", "sr.", "sr ", "lead", "principal", "architect", "manager",
	"head", "director", " engineer ii", " engineer iii", " engineer iv",
	" ii -", " iii -", " iv -", " mid level", "mid-level", "staff",
}

// IsBlockedDomain reports whether the URL points at a blocked aggregator.
func IsBlockedDomain(rawURL string, blocked []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, b := range blocked {
		if strings.Contains(host, b) {
			return true
		}
	}
	return false
}

// LooksLikeCareerPage reports whether the URL is an ATS host or a generic
// company careers path.
func LooksLikeCareerPage(rawURL string) bool {
	u := strings.ToLower(rawURL)
	for _, h := range atsHosts {
		if strings.Contains(u, h) {
			return true
		}
	}
	return careersPathRegex.MatchString(u)
}

// FresherPositive screens a search result by title and snippet: at least one
// fresher include token and no exclude token.
func FresherPositive(title, snippet string) bool {
	t := strings.ToLower(title)
	d := strings.ToLower(snippet)
	included := false
	for _, tok := range fresherIncludeTokens {
		if strings.Contains(t, tok) || strings.Contains(d, tok) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, tok := range fresherExcludeTokens {
		if strings.Contains(t, tok) || strings.Contains(d, tok) {
			return false
		}
	}
	return true
}
