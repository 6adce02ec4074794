package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobradar/internal/model"
)

func TestNormalizeRow_AliasPriority(t *testing.T) {
	row := map[string]string{
		"g_job_id":     "abc123",
		"company_name": "Acme",
		"job_title":    "Junior Developer",
		"link":         "https://acme.com/jobs/1",
		"snippet":      "freshers welcome",
		"posted_at":    "2026-08-20",
	}
	j := NormalizeRow(row)
	assert.Equal(t, "abc123", j.ID)
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "Junior Developer", j.Title)
	assert.Equal(t, "https://acme.com/jobs/1", j.JobURL)
	assert.Equal(t, "freshers welcome", j.Description)
	assert.Equal(t, "2026-08-20", j.DatePosted)
	assert.Equal(t, "", j.Salary, "missing fields default to empty string")
}

func TestNormalizeRow_FirstNonEmptyWins(t *testing.T) {
	row := map[string]string{
		"title":     "  ",
		"job_title": "QA Engineer",
		"position":  "should lose",
	}
	assert.Equal(t, "QA Engineer", NormalizeRow(row).Title)
}

func TestMerge_AuditKeepsSourceOrder(t *testing.T) {
	a := []model.Job{{ID: "1"}, {ID: "2"}}
	b := []model.Job{{ID: "3"}}
	audit, _ := Merge(a, b)
	require.Len(t, audit, 3)
	assert.Equal(t, "1", audit[0].ID)
	assert.Equal(t, "3", audit[2].ID)
}

func TestMerge_EmptySecondSourceProperty(t *testing.T) {
	distinct := []model.Job{
		{ID: "1", JobURL: "https://a.com/jobs/1", Company: "A", Title: "Dev"},
		{ID: "2", JobURL: "https://a.com/jobs/2", Company: "B", Title: "Dev"},
	}
	_, clean := Merge(distinct, nil)
	assert.Len(t, clean, len(distinct), "pairwise-distinct triples keep everything")

	withDupe := append(distinct, model.Job{ID: "1", JobURL: "https://other.com/x", Company: "C", Title: "QA"})
	_, clean = Merge(withDupe, nil)
	assert.Less(t, len(clean), len(withDupe))
}

func TestDedupe_AnyKeySpaceDrops(t *testing.T) {
	rows := []model.Job{
		{ID: "1", JobURL: "https://a.com/jobs/1", Company: "Acme", Title: "Dev"},
		// same id, everything else new
		{ID: "1", JobURL: "https://b.com/jobs/9", Company: "Beta", Title: "QA"},
		// same canonical url (tracking params), new id
		{ID: "2", JobURL: "https://a.com/jobs/1?utm=ref", Company: "Gamma", Title: "SRE"},
		// same company|title, case-insensitive
		{ID: "3", JobURL: "https://c.com/jobs/7", Company: "ACME", Title: "dev"},
	}
	clean := Dedupe(rows)
	require.Len(t, clean, 1)
	assert.Equal(t, "1", clean[0].ID, "first occurrence wins")
}

func TestDedupe_BlankRecordsPassThrough(t *testing.T) {
	rows := []model.Job{{Description: "a"}, {Description: "b"}}
	assert.Len(t, Dedupe(rows), 2, "records with no keys cannot collide")
}

// Cross-source scenario: same posting seen with and without tracking params.
func TestMerge_CrossSourceURLVariant(t *testing.T) {
	a := []model.Job{{JobURL: "https://x.com/jobs/1?utm=ref", Company: "X", Title: "Junior Dev"}}
	b := []model.Job{{JobURL: "https://x.com/jobs/1", Company: "X", Title: "Junior Dev"}}

	audit, clean := Merge(a, b)
	assert.Len(t, audit, 2)
	assert.Len(t, clean, 1)
}

func TestMerge_Idempotent(t *testing.T) {
	a := []model.Job{
		{ID: "1", JobURL: "https://a.com/jobs/1", Company: "A", Title: "Dev"},
		{ID: "1", JobURL: "https://a.com/jobs/1", Company: "A", Title: "Dev"},
		{JobURL: "https://a.com/jobs/2", Company: "B", Title: "QA"},
	}
	b := []model.Job{{ID: "9", Company: "C", Title: "SDET"}}

	audit1, clean1 := Merge(a, b)
	audit2, clean2 := Merge(a, b)
	assert.Equal(t, audit1, audit2)
	assert.Equal(t, clean1, clean2)
}

func TestDedupeRaw(t *testing.T) {
	jobs := []model.RawJob{
		{Position: "Junior Dev", Company: "Acme", JobURL: "https://l.in/jobs/view/x-3919482716"},
		// same id via a different URL shape
		{Position: "Junior Dev", Company: "Acme", JobURL: "https://l.in/jobs/search/?currentJobId=3919482716"},
		{Position: "QA Engineer", Company: "Beta", JobURL: "https://beta.com/jobs/2"},
		// unresolvable records pass through
		{}, {},
	}
	out := DedupeRaw(jobs)
	assert.Len(t, out, 4)
}
