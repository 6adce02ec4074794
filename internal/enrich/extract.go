// Contact and skill extraction from enriched description text.

package enrich

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	// Indian mobile numbers, with or without the +91 prefix
	phoneRegex    = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{4}[-\s]?\d{5}\b`)
	nonDigitRegex = regexp.MustCompile(`[^\d+]`)
)

// DefaultSkills is the skill vocabulary scanned for in descriptions.
var DefaultSkills = []string{
	"java", "python", "golang", "c", "c++", "javascript", "typescript",
	"spring", "spring boot", "hibernate",
	"html", "css", "react", "angular", "node", "express",
	"sql", "mysql", "postgres", "mongodb",
	"git", "github", "rest", "rest api", "microservices",
	"docker", "kubernetes", "aws", "gcp", "azure",
	"testing", "selenium", "jest", "pytest",
}

// Emails returns the unique e-mail addresses found in text, in first-seen
// order.
func Emails(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range emailRegex.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// Phones returns the unique phone numbers found in text, normalized to the
// +91 form.
func Phones(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range phoneRegex.FindAllString(text, -1) {
		n := nonDigitRegex.ReplaceAllString(m, "")
		if len(n) == 10 {
			n = "+91" + n
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Skills returns the entries of the skill list present in text as whole
// words, in list order so output is deterministic.
func Skills(text string, skills []string) []string {
	s := strings.ToLower(text)
	var out []string
	for _, skill := range skills {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
		if re.MatchString(s) {
			out = append(out, skill)
		}
	}
	return out
}
