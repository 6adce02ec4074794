// Runs only the professional-network collection stage.

package main

import (
	"context"
	"log"
	"time"

	"go-jobradar/internal/config"
	"go-jobradar/internal/enrich"
	"go-jobradar/internal/pipeline"
	"go-jobradar/internal/source/network"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	enr := enrich.NewFetcher(cfg.EnrichConcurrency, cfg.EnrichBatchPause)
	enr.Progress = true

	src := network.NewClient(cfg.Location, cfg.DateWindow)
	report, err := pipeline.RunNetwork(ctx, cfg, src, enr)
	if err != nil {
		log.Fatalf("❌ Network run failed: %v", err)
	}

	log.Printf("🏁 Done: %d collected, %d kept, %d written to %s",
		report.Collected, report.Kept, len(report.Rows), report.OutPath)
}
