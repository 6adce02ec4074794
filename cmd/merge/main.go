// Merges the source artifacts into the audit and clean datasets.

package main

import (
	"log"

	"go-jobradar/internal/config"
	"go-jobradar/internal/pipeline"
)

func main() {
	cfg := config.Load()

	report, err := pipeline.RunMerge(cfg)
	if err != nil {
		log.Fatalf("❌ Merge failed: %v", err)
	}

	log.Printf("🏁 Done: %d audit rows -> %d clean rows (%s)",
		report.AuditRows, report.CleanRows, report.CleanPath)
}
