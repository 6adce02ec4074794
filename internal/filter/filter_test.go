package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRules() *Rules {
	return NewRules(DefaultRoles, DefaultBannedTitleWords)
}

func TestTitleLikelyMatch(t *testing.T) {
	r := testRules()
	tests := []struct {
		title string
		want  bool
	}{
		{"Junior Software Developer", true},
		{"junior java developer (remote)", true},
		{"Senior Software Engineer", false},
		{"Sr. Backend Engineer", false},
		{"Engineering Manager", false},
		{"Pastry Chef", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, r.TitleLikelyMatch(tt.title))
		})
	}
}

func TestRoleMatches_DescriptionCanCarryTheRole(t *testing.T) {
	r := testRules()
	assert.True(t, r.RoleMatches("Engineering Trainee Program", "hiring a junior developer to join our team"))
	assert.False(t, r.RoleMatches("Lead Developer", "junior developer duties"), "senior title always disqualifies")
}

func TestMatchedRole(t *testing.T) {
	r := testRules()
	assert.Equal(t, "software engineer", r.MatchedRole("Associate Software Engineer", ""))
	assert.Equal(t, "", r.MatchedRole("Barista", "latte art"))
}

func TestQuickLocationOK(t *testing.T) {
	assert.True(t, QuickLocationOK("Bengaluru, Karnataka, India", "Junior Developer"))
	assert.True(t, QuickLocationOK("Remote", "Junior Developer"))
	assert.True(t, QuickLocationOK("Anywhere", "Junior Developer (Remote)"))
	assert.False(t, QuickLocationOK("Berlin, Germany", "Junior Developer"))
}

func TestLocationOK_RemoteOnlyInBody(t *testing.T) {
	assert.True(t, LocationOK("Anywhere", "Junior Developer", "This role is fully remote."))
	assert.True(t, LocationOK("Anywhere", "Junior Developer", "work from home friendly"))
	assert.False(t, LocationOK("Berlin, Germany", "Junior Developer", "on-site only"))
}

func TestExperienceAllowed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"explicit fresher", "freshers welcome, training provided", true},
		{"zero to two", "0-2 years of experience", true},
		{"six months", "at least 6 months of internship experience", true},
		{"minimum five years", "minimum 5 years experience with Java", false},
		{"five plus", "5+ years building backend systems", false},
		{"two plus", "2+ years of professional experience", false},
		{"one to five range", "1-5 years experience", false},
		{"experience colon", "Experience: 4 years", false},
		{"unstated defaults to accept", "join our team and build cool things", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceAllowed(tt.text))
		})
	}
}

// Exclusion patterns outrank inclusion when one text matches both.
func TestExperienceAllowed_ExclusionWinsTies(t *testing.T) {
	assert.False(t, ExperienceAllowed("Junior Developer — minimum 5 years experience"))
	assert.False(t, ExperienceAllowed("fresher mindset, 4+ years required"))
}

func TestIsBlockedDomain(t *testing.T) {
	assert.True(t, IsBlockedDomain("https://www.linkedin.com/jobs/view/1", DefaultBlockedDomains))
	assert.True(t, IsBlockedDomain("https://in.indeed.com/viewjob?jk=1", DefaultBlockedDomains))
	assert.False(t, IsBlockedDomain("https://boards.greenhouse.io/acme/jobs/1", DefaultBlockedDomains))
}

func TestLooksLikeCareerPage(t *testing.T) {
	assert.True(t, LooksLikeCareerPage("https://boards.greenhouse.io/acme/jobs/1"))
	assert.True(t, LooksLikeCareerPage("https://acme.com/careers/junior-developer"))
	assert.True(t, LooksLikeCareerPage("https://acme.wd5.myworkdayjobs.com/External/job/1"))
	assert.False(t, LooksLikeCareerPage("https://acme.com/blog/how-we-hire"))
}

func TestFresherPositive(t *testing.T) {
	assert.True(t, FresherPositive("Graduate Engineer Trainee", "0-1 year, Bengaluru"))
	assert.False(t, FresherPositive("Senior Graduate Program Manager", "freshers welcome"))
	assert.False(t, FresherPositive("Software Engineer", "3+ years"), "no include token")
}
