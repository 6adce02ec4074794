// Shared record shapes used by every pipeline stage.

package model

// RawJob is one posting as returned by a source query. Field coverage differs
// per source (the CSE source has no AgoTime, the network source no Via) and
// nothing about it is deduplicated yet.
type RawJob struct {
	Position string
	Company  string
	Location string
	JobURL   string
	Date     string
	AgoTime  string
	Salary   string
	Snippet  string
	Via      string
	Source   string
}

// Job is the normalized record used everywhere downstream. All fields are
// strings and absent values are empty strings, never null, so CSV emission
// never special-cases missing data. A Job is terminal: once enrichment is
// done it is written out and never mutated again.
type Job struct {
	ID            string
	Company       string
	Title         string
	MatchedRole   string
	Location      string
	IsRemote      string
	DatePosted    string
	AgoTime       string
	Salary        string
	JobURL        string
	ContactEmails string
	ContactPhones string
	Skills        string
	Description   string
}

// Columns is the fixed output column order shared by every CSV artifact.
func Columns() []string {
	return []string{
		"li_job_id", "company", "title", "matched_role", "location", "is_remote",
		"date_posted", "ago_time", "salary", "job_url",
		"contact_emails", "contact_phones", "skills", "description",
	}
}

// Values returns the job's fields in Columns() order.
func (j Job) Values() []string {
	return []string{
		j.ID, j.Company, j.Title, j.MatchedRole, j.Location, j.IsRemote,
		j.DatePosted, j.AgoTime, j.Salary, j.JobURL,
		j.ContactEmails, j.ContactPhones, j.Skills, j.Description,
	}
}
