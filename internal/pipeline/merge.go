package pipeline

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"

	"go-jobradar/internal/config"
	"go-jobradar/internal/csvio"
	"go-jobradar/internal/merge"
)

// Older runs wrote date-stamped artifacts; prefer the newest one present.
var cseArtifactPattern = regexp.MustCompile(`^google.*\.csv$`)

// MergeReport summarizes one merge run.
type MergeReport struct {
	AuditRows int
	CleanRows int
	AuditPath string
	CleanPath string
}

// RunMerge reads both source artifacts, normalizes their headers, and writes
// the audit (everything) and clean (first occurrence wins) datasets. A source
// that did not run simply contributes no rows.
func RunMerge(cfg *config.Config) (*MergeReport, error) {
	cseFile := csvio.FindNewest(cfg.DataPath, cseArtifactPattern)
	if cseFile == "" {
		cseFile = filepath.Join(cfg.DataPath, cfg.CSEOutFile)
	}
	netFile := filepath.Join(cfg.DataPath, cfg.NetworkOutFile)

	cseRows, err := csvio.ReadRows(cseFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cseFile, err)
	}
	netRows, err := csvio.ReadRows(netFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", netFile, err)
	}

	audit, clean := merge.Merge(merge.NormalizeRows(cseRows), merge.NormalizeRows(netRows))

	report := &MergeReport{
		AuditRows: len(audit),
		CleanRows: len(clean),
		AuditPath: filepath.Join(cfg.DataPath, cfg.AuditOutFile),
		CleanPath: filepath.Join(cfg.DataPath, cfg.CleanOutFile),
	}

	if err := csvio.WriteJobs(report.AuditPath, audit, false); err != nil {
		return nil, fmt.Errorf("write %s: %w", report.AuditPath, err)
	}
	if err := csvio.WriteJobs(report.CleanPath, clean, false); err != nil {
		return nil, fmt.Errorf("write %s: %w", report.CleanPath, err)
	}

	log.Printf("🧹 Merged %d audit rows into %d clean rows", len(audit), len(clean))
	return report, nil
}
