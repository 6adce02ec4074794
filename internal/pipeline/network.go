package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"golang.org/x/time/rate"

	"go-jobradar/internal/config"
	"go-jobradar/internal/csvio"
	"go-jobradar/internal/enrich"
	"go-jobradar/internal/filter"
	"go-jobradar/internal/identity"
	"go-jobradar/internal/merge"
	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
	"go-jobradar/internal/schedule"
	"go-jobradar/internal/state"
)

// NetworkReport summarizes one professional-network collection run.
type NetworkReport struct {
	Rows        []model.Job
	Collected   int
	Deduped     int
	PreFiltered int
	Kept        int
	OutPath     string
}

// RunNetwork collects listings across the role × experience × remote facet
// grid, enriches the survivors of the cheap pre-filter, applies the strict
// filters and writes the CSV artifact. In incremental mode only ids unseen
// by previous runs are emitted, while the seen set still absorbs every kept
// id so a posting is never emitted twice across runs.
func RunNetwork(ctx context.Context, cfg *config.Config, src NetworkSource, enr Enricher) (*NetworkReport, error) {
	rules := filter.NewRules(roles(cfg), bannedWords(cfg))
	tasks := schedule.FacetedTasks(roles(cfg), cfg.Experiences)

	// no daily cap on this source; the controller only contributes retries
	ctrl := quota.NewController(len(tasks))
	pace := rate.NewLimiter(rate.Every(cfg.QueryPause), 1)
	pool := schedule.NewPool(cfg.QueryConcurrency, pace, ctrl)

	log.Printf("🔎 Running %d faceted queries with %d workers...", len(tasks), cfg.QueryConcurrency)
	raw := pool.Run(ctx, tasks, func(ctx context.Context, t schedule.Task) ([]model.RawJob, error) {
		return src.Search(ctx, t.Role, t.Experience, t.RemoteOnly)
	})

	report := &NetworkReport{
		Collected: len(raw),
		OutPath:   filepath.Join(cfg.DataPath, cfg.NetworkOutFile),
	}

	deduped := merge.DedupeRaw(raw)
	report.Deduped = len(deduped)

	var pre []model.RawJob
	for _, r := range deduped {
		if rules.TitleLikelyMatch(r.Position) && filter.QuickLocationOK(r.Location, r.Position) {
			pre = append(pre, r)
		}
	}
	report.PreFiltered = len(pre)
	log.Printf("📥 Collected %d, %d after dedupe, %d past the pre-filter",
		len(raw), len(deduped), len(pre))

	urls := make([]string, len(pre))
	for i, r := range pre {
		urls[i] = r.JobURL
	}
	metas := enr.FetchAll(ctx, urls)

	jobs := make([]model.Job, 0, len(pre))
	for i, r := range pre {
		md := metas[i]
		desc := md.Description
		if !filter.LocationOK(r.Location, r.Position, desc) {
			continue
		}
		if !rules.RoleMatches(r.Position, desc) {
			continue
		}
		if !filter.ExperienceAllowed(r.Position + " " + desc) {
			continue
		}

		id := identity.ExtractJobID(r.JobURL)
		if id == "" {
			id = identity.CanonicalURL(r.JobURL)
		}
		jobs = append(jobs, model.Job{
			ID:            id,
			Company:       firstNonEmpty(md.Company, r.Company),
			Title:         r.Position,
			MatchedRole:   rules.MatchedRole(r.Position, desc),
			Location:      firstNonEmpty(md.Location, r.Location),
			IsRemote:      remoteFlag(filter.IsRemoteText(r.Location, desc)),
			DatePosted:    firstNonEmpty(md.PostedAt, r.Date),
			AgoTime:       r.AgoTime,
			Salary:        r.Salary,
			JobURL:        identity.CanonicalURL(r.JobURL),
			ContactEmails: joinList(enrich.Emails(desc)),
			ContactPhones: joinList(enrich.Phones(desc)),
			Skills:        joinList(enrich.Skills(desc, skills(cfg))),
			Description:   desc,
		})
	}

	final := merge.Dedupe(jobs)
	report.Kept = len(final)

	seen := state.LoadSeenIDs(cfg.CachePath)
	out := final
	if cfg.IncrementalMode {
		out = make([]model.Job, 0, len(final))
		for _, j := range final {
			if !seen.Has(j.ID) {
				out = append(out, j)
			}
		}
		log.Printf("🆕 Incremental mode: %d of %d rows are new", len(out), len(final))
	}
	report.Rows = out

	if err := csvio.WriteJobs(report.OutPath, out, false); err != nil {
		return report, fmt.Errorf("write %s: %w", report.OutPath, err)
	}
	log.Printf("💾 Wrote %d rows to %s", len(out), report.OutPath)

	if cfg.PersistSeen {
		for _, j := range final {
			seen.Add(j.ID)
		}
		if err := seen.Save(); err != nil {
			log.Printf("⚠️ Could not save seen ids: %v", err)
		}
	}
	return report, nil
}
