// Runs only the search-engine collection stage.

package main

import (
	"context"
	"log"
	"time"

	"go-jobradar/internal/config"
	"go-jobradar/internal/enrich"
	"go-jobradar/internal/pipeline"
	"go-jobradar/internal/source/cse"
)

func main() {
	cfg := config.Load()
	if err := cfg.ValidateCSE(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	enr := enrich.NewFetcher(cfg.EnrichConcurrency, cfg.EnrichBatchPause)
	enr.Progress = true

	src := cse.NewClient(cfg.CSEKey, cfg.CSECX, cfg.DateRestrict)
	report, err := pipeline.RunCSE(ctx, cfg, src, enr)
	if err != nil {
		log.Fatalf("❌ Search-engine run failed: %v", err)
	}

	log.Printf("🏁 Done: %d rows, %d of %d budgeted queries used",
		len(report.Rows), report.QueriesUsed, report.Budget)
}
