// Wires sources, scheduler, filters, enrichment and state into the three
// run stages. Collaborators are interfaces so the stages test without any
// network.

package pipeline

import (
	"context"
	"strings"

	"go-jobradar/internal/config"
	"go-jobradar/internal/enrich"
	"go-jobradar/internal/filter"
	"go-jobradar/internal/model"
)

// CSESource is the quota-protected search-engine collaborator.
type CSESource interface {
	Search(ctx context.Context, role string, start int) ([]model.RawJob, error)
	Preflight(ctx context.Context) error
}

// NetworkSource is the professional-network listing collaborator.
type NetworkSource interface {
	Search(ctx context.Context, role, experience string, remoteOnly bool) ([]model.RawJob, error)
}

// Enricher is the best-effort posting-page scraper. It never fails; absent
// metadata comes back as zero values.
type Enricher interface {
	FetchMetadata(ctx context.Context, url string) enrich.Metadata
	FetchAll(ctx context.Context, urls []string) []enrich.Metadata
}

func roles(cfg *config.Config) []string {
	if len(cfg.Roles) > 0 {
		return cfg.Roles
	}
	return filter.DefaultRoles
}

func bannedWords(cfg *config.Config) []string {
	if len(cfg.BannedTitleWords) > 0 {
		return cfg.BannedTitleWords
	}
	return filter.DefaultBannedTitleWords
}

func skills(cfg *config.Config) []string {
	if len(cfg.Skills) > 0 {
		return cfg.Skills
	}
	return enrich.DefaultSkills
}

func joinList(items []string) string {
	return strings.Join(items, "; ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func remoteFlag(remote bool) string {
	if remote {
		return "yes"
	}
	return "no"
}
