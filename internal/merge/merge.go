// Cross-source concatenation and dedupe: one audit set (untouched), one
// clean set (first occurrence wins).

package merge

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobradar/internal/identity"
	"go-jobradar/internal/model"
)

// Merge concatenates both normalized sources (A fully, then B fully) into
// the audit set and dedupes the concatenation into the clean set.
func Merge(sourceA, sourceB []model.Job) (audit, clean []model.Job) {
	audit = make([]model.Job, 0, len(sourceA)+len(sourceB))
	audit = append(audit, sourceA...)
	audit = append(audit, sourceB...)
	clean = Dedupe(audit)
	return audit, clean
}

// Dedupe drops any record whose explicit id, canonical URL or
// company|title pair was produced by an earlier record. The three key
// spaces are independent: a non-empty hit in ANY of them drops the record,
// and a record with no extractable key at all passes through untouched.
func Dedupe(rows []model.Job) []model.Job {
	seenIDs := mapset.NewThreadUnsafeSet[string]()
	seenURLs := mapset.NewThreadUnsafeSet[string]()
	seenCombos := mapset.NewThreadUnsafeSet[string]()

	out := make([]model.Job, 0, len(rows))
	for _, r := range rows {
		id := strings.TrimSpace(r.ID)
		cu := identity.CanonicalURL(r.JobURL)
		combo := comboKey(r.Company, r.Title)

		if id != "" && seenIDs.Contains(id) {
			continue
		}
		if cu != "" && seenURLs.Contains(cu) {
			continue
		}
		if combo != "" && seenCombos.Contains(combo) {
			continue
		}

		out = append(out, r)
		if id != "" {
			seenIDs.Add(id)
		}
		if cu != "" {
			seenURLs.Add(cu)
		}
		if combo != "" {
			seenCombos.Add(combo)
		}
	}
	return out
}

// comboKey is the company|title auxiliary key; empty when both parts are
// empty so blank records cannot collide with each other.
func comboKey(company, title string) string {
	c := strings.ToLower(strings.TrimSpace(company))
	t := strings.ToLower(strings.TrimSpace(title))
	if c == "" && t == "" {
		return ""
	}
	return c + "|" + t
}

// DedupeRaw is the early hard dedupe run right after collection, before any
// enrichment spend: first record per identity key wins, unresolvable
// records pass through.
func DedupeRaw(jobs []model.RawJob) []model.RawJob {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]model.RawJob, 0, len(jobs))
	for _, j := range jobs {
		key := identity.Key(j.JobURL, j.Company, j.Position)
		if key == "" {
			out = append(out, j)
			continue
		}
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		out = append(out, j)
	}
	return out
}
