// Role/seniority/location predicates shared by the cheap pre-filter (title +
// location only) and the strict post-enrichment filter (title + description).

package filter

import (
	"strings"
)

// DefaultRoles is the junior-role vocabulary searched for by default.
var DefaultRoles = []string{
	"Software Engineer", "Software Developer",
	"Junior Software Engineer", "Junior Software Developer",
	"Associate Software Engineer", "Associate Software Developer",
	"Java Developer", "Junior Java Developer",
	"Python Developer", "Graduate Engineer Trainee", "Software Trainee", "Junior Developer",
	"Software Development Intern",
	"Backend Engineer", "Frontend Engineer", "Full Stack Engineer",
	"Software Testing", "QA Engineer", "Trainee Engineer",
}

// DefaultBannedTitleWords mark a posting as senior regardless of anything else.
var DefaultBannedTitleWords = []string{"senior", "lead", "staff", "principal", "architect", "manager", "sr."}

// Rules holds the configured predicate vocabulary.
type Rules struct {
	rolePhrases []string // lowercased
	bannedWords []string // lowercased
}

// NewRules lowercases and stores the configured role phrases and banned
// seniority words.
func NewRules(roles, banned []string) *Rules {
	r := &Rules{}
	for _, role := range roles {
		r.rolePhrases = append(r.rolePhrases, strings.ToLower(role))
	}
	for _, w := range banned {
		r.bannedWords = append(r.bannedWords, strings.ToLower(w))
	}
	return r
}

// TitleHasSeniorWords reports whether the title contains a banned seniority
// marker.
func (r *Rules) TitleHasSeniorWords(title string) bool {
	t := strings.ToLower(title)
	for _, w := range r.bannedWords {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

// TitleLikelyMatch is the cheap title-only predicate: some role phrase is in
// the title and no banned seniority word is.
func (r *Rules) TitleLikelyMatch(title string) bool {
	t := strings.ToLower(title)
	if t == "" || r.TitleHasSeniorWords(t) {
		return false
	}
	for _, p := range r.rolePhrases {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// RoleMatches is the strict variant: a role phrase may appear in the title or
// the enriched description, but a senior title still disqualifies.
func (r *Rules) RoleMatches(title, description string) bool {
	if r.TitleHasSeniorWords(title) {
		return false
	}
	t := strings.ToLower(title)
	d := strings.ToLower(description)
	for _, p := range r.rolePhrases {
		if strings.Contains(t, p) || strings.Contains(d, p) {
			return true
		}
	}
	return false
}

// MatchedRole returns the first configured role phrase found in the title or
// description, for the matched_role output column.
func (r *Rules) MatchedRole(title, description string) string {
	t := strings.ToLower(title)
	d := strings.ToLower(description)
	for _, p := range r.rolePhrases {
		if strings.Contains(t, p) || strings.Contains(d, p) {
			return p
		}
	}
	return ""
}
