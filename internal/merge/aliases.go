package merge

import (
	"strings"

	"go-jobradar/internal/model"
)

// fieldAliases maps each canonical output field to the ordered list of
// source column names that may carry it. The first non-empty match wins;
// adding a source means extending these lists, not branching per source.
var fieldAliases = map[string][]string{
	"li_job_id":      {"li_job_id", "g_job_id", "job_id", "id"},
	"company":        {"company", "company_name", "org", "employer"},
	"title":          {"title", "job_title", "position"},
	"matched_role":   {"matched_role", "role", "standard_title"},
	"location":       {"location", "job_location", "city"},
	"is_remote":      {"is_remote", "remote", "remote_friendly"},
	"date_posted":    {"date_posted", "posted_at", "date"},
	"ago_time":       {"ago_time", "posted_ago"},
	"salary":         {"salary", "compensation", "pay"},
	"job_url":        {"job_url", "url", "link", "href"},
	"contact_emails": {"contact_emails", "emails"},
	"contact_phones": {"contact_phones", "phones"},
	"skills":         {"skills", "skills_hint"},
	"description":    {"description", "desc", "snippet", "summary"},
}

// pick returns the first non-empty value among the aliases for field.
func pick(row map[string]string, field string) string {
	for _, k := range fieldAliases[field] {
		if v, ok := row[k]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// NormalizeRow maps one header-keyed source row onto the canonical record
// shape. Unknown columns are ignored; missing ones become empty strings.
func NormalizeRow(row map[string]string) model.Job {
	return model.Job{
		ID:            pick(row, "li_job_id"),
		Company:       pick(row, "company"),
		Title:         pick(row, "title"),
		MatchedRole:   pick(row, "matched_role"),
		Location:      pick(row, "location"),
		IsRemote:      pick(row, "is_remote"),
		DatePosted:    pick(row, "date_posted"),
		AgoTime:       pick(row, "ago_time"),
		Salary:        pick(row, "salary"),
		JobURL:        pick(row, "job_url"),
		ContactEmails: pick(row, "contact_emails"),
		ContactPhones: pick(row, "contact_phones"),
		Skills:        pick(row, "skills"),
		Description:   pick(row, "description"),
	}
}

// NormalizeRows maps a whole source's rows, preserving order.
func NormalizeRows(rows []map[string]string) []model.Job {
	out := make([]model.Job, 0, len(rows))
	for _, r := range rows {
		out = append(out, NormalizeRow(r))
	}
	return out
}
