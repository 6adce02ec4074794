package pipeline

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/time/rate"

	"go-jobradar/internal/config"
	"go-jobradar/internal/csvio"
	"go-jobradar/internal/filter"
	"go-jobradar/internal/identity"
	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
	"go-jobradar/internal/schedule"
	"go-jobradar/internal/source/cse"
	"go-jobradar/internal/state"
)

// CSEReport summarizes one search-engine collection run.
type CSEReport struct {
	Rows        []model.Job
	Collected   int
	Budget      int
	QueriesUsed int
	OutPath     string
}

// RunCSE collects career-page postings through the budgeted search API.
// Credentials are verified up front; the quota ledger and the CSV artifact
// are persisted even when the run stops early on the daily cap.
func RunCSE(ctx context.Context, cfg *config.Config, src CSESource, enr Enricher) (*CSEReport, error) {
	if err := src.Preflight(ctx); err != nil {
		return nil, fmt.Errorf("preflight: %w", err)
	}

	store := state.NewDailyStore(cfg.CachePath)
	st := store.Load()

	budget := cfg.DailyBudget - st.QueriesMade
	if budget < 0 {
		budget = 0
	}
	report := &CSEReport{
		Budget:  budget,
		OutPath: filepath.Join(cfg.DataPath, cfg.CSEOutFile),
	}
	if budget == 0 {
		log.Printf("⏹️ Daily query budget already spent (%d/%d) — nothing to do",
			st.QueriesMade, cfg.DailyBudget)
		return report, nil
	}
	log.Printf("🔎 Budget for this run: %d of %d queries", budget, cfg.DailyBudget)

	ctrl := quota.NewController(budget)
	seen := mapset.NewSet[string]()
	seen.Append(st.SeenURLs...)

	// ledger and artifact survive an early quota stop
	defer func() {
		report.QueriesUsed = ctrl.Spent()
		st.QueriesMade += report.QueriesUsed
		st.SeenURLs = seen.ToSlice()
		if err := store.Save(st); err != nil {
			log.Printf("⚠️ Could not save quota state: %v", err)
		}
		if err := csvio.WriteJobs(report.OutPath, report.Rows, true); err != nil {
			log.Printf("⚠️ Could not write %s: %v", report.OutPath, err)
			return
		}
		log.Printf("💾 Wrote %d rows to %s (queries used today: %d/%d)",
			len(report.Rows), report.OutPath, st.QueriesMade, cfg.DailyBudget)
	}()

	tasks := schedule.PagedTasks(roles(cfg), cfg.PagesPerRole, cse.ResultsPerPage)
	pace := rate.NewLimiter(rate.Every(cfg.QueryPause), 1)
	pool := schedule.NewPool(cfg.QueryConcurrency, pace, ctrl)

	raw := pool.Run(ctx, tasks, func(ctx context.Context, t schedule.Task) ([]model.RawJob, error) {
		return src.Search(ctx, t.Role, t.Start)
	})
	report.Collected = len(raw)

	// gates run before any enrichment spend
	var kept []model.RawJob
	for _, r := range raw {
		cu := identity.CanonicalURL(r.JobURL)
		if cu == "" || seen.Contains(cu) {
			continue
		}
		if filter.IsBlockedDomain(r.JobURL, filter.DefaultBlockedDomains) {
			continue
		}
		if !filter.LooksLikeCareerPage(r.JobURL) {
			continue
		}
		if !filter.FresherPositive(r.Position, r.Snippet) {
			continue
		}
		seen.Add(cu)
		kept = append(kept, r)
	}
	log.Printf("📥 Collected %d results, %d past the gates", len(raw), len(kept))

	urls := make([]string, len(kept))
	for i, r := range kept {
		urls[i] = r.JobURL
	}
	metas := enr.FetchAll(ctx, urls)

	rows := make([]model.Job, 0, len(kept))
	for i, r := range kept {
		md := metas[i]
		title := firstNonEmpty(md.Title, r.Position)
		// pages without structured data still get the result's own fields
		company := firstNonEmpty(md.Company, strings.TrimPrefix(r.Via, "www."))
		desc := firstNonEmpty(md.Description, snippetText(r.Snippet))
		rows = append(rows, model.Job{
			ID:          cseJobID(title, company, r.JobURL),
			Company:     company,
			Title:       title,
			Location:    md.Location,
			IsRemote:    remoteFlag(filter.IsRemoteText(md.Location, desc)),
			DatePosted:  md.PostedAt,
			JobURL:      r.JobURL,
			Description: desc,
		})
	}
	report.Rows = rows
	return report, nil
}

// maxSnippetLen bounds the fallback description taken from a search snippet.
const maxSnippetLen = 1500

var snippetSpaceRegex = regexp.MustCompile(`\s+`)

// snippetText normalizes a search snippet for use as a fallback description.
func snippetText(s string) string {
	s = strings.TrimSpace(snippetSpaceRegex.ReplaceAllString(s, " "))
	if len(s) > maxSnippetLen {
		s = s[:maxSnippetLen]
	}
	return s
}

// cseJobID builds a synthetic stable id for postings that carry no
// source-native one.
func cseJobID(title, company, url string) string {
	payload, _ := json.Marshal(map[string]string{
		"job_title":    title,
		"company_name": company,
		"url":          url,
	})
	return base64.StdEncoding.EncodeToString(payload)
}
