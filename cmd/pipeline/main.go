// Runs the whole pipeline end to end: both collection stages, the merge, the
// optional webhook delivery and the optional Telegram summary. With -every it
// keeps running on a cron spec instead of exiting.

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-jobradar/internal/config"
	"go-jobradar/internal/deliver"
	"go-jobradar/internal/enrich"
	"go-jobradar/internal/pipeline"
	"go-jobradar/internal/source/cse"
	"go-jobradar/internal/source/network"
	"go-jobradar/internal/ui"
)

func main() {
	every := flag.String("every", "", `run continuously on a cron spec, e.g. "@every 6h"`)
	noBanner := flag.Bool("no-banner", false, "suppress the startup banner")
	flag.Parse()

	cfg := config.Load()
	ui.PrintBanner(*noBanner)

	if *every == "" {
		runOnce(cfg)
		return
	}

	c := cron.New(cron.WithLogger(cron.DefaultLogger))
	if _, err := c.AddFunc(*every, func() { runOnce(cfg) }); err != nil {
		log.Fatalf("❌ Invalid -every spec %q: %v", *every, err)
	}
	c.Start()
	log.Printf("⏰ Scheduler started — spec: %s", *every)

	// run immediately so the first artifacts exist before the first tick
	runOnce(cfg)
	select {}
}

func runOnce(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.Println("🚀 Starting job collection run...")
	summary := deliver.RunSummary{QuotaCap: cfg.DailyBudget}

	if err := cfg.ValidateCSE(); err != nil {
		log.Printf("⚠️ Skipping search-engine stage: %v", err)
	} else {
		enr := enrich.NewFetcher(cfg.EnrichConcurrency, cfg.EnrichBatchPause)
		enr.Progress = true
		src := cse.NewClient(cfg.CSEKey, cfg.CSECX, cfg.DateRestrict)
		report, err := pipeline.RunCSE(ctx, cfg, src, enr)
		if err != nil {
			log.Printf("❌ Search-engine stage failed: %v", err)
		} else {
			summary.Collected += report.Collected
			summary.Kept += len(report.Rows)
			summary.QueriesUsed = report.QueriesUsed
		}
	}

	enr := enrich.NewFetcher(cfg.EnrichConcurrency, cfg.EnrichBatchPause)
	enr.Progress = true
	netReport, err := pipeline.RunNetwork(ctx, cfg, network.NewClient(cfg.Location, cfg.DateWindow), enr)
	if err != nil {
		log.Printf("❌ Network stage failed: %v", err)
	} else {
		summary.Collected += netReport.Collected
		summary.Kept += netReport.Kept
	}

	mergeReport, mergeErr := pipeline.RunMerge(cfg)
	if mergeErr != nil {
		log.Printf("❌ Merge stage failed: %v", mergeErr)
	} else {
		summary.CleanRows = mergeReport.CleanRows
		summary.AuditRows = mergeReport.AuditRows
	}

	ui.PrintRunSummary(summary)

	// never ship a dataset a failed merge may have left stale
	if cfg.WebhookURL != "" && mergeErr == nil {
		wh := deliver.NewWebhook(cfg.WebhookURL, cfg.WebhookToken)
		if err := wh.Upload(ctx, mergeReport.CleanPath); err != nil {
			log.Printf("⚠️ Webhook delivery failed: %v", err)
		} else {
			log.Println("📤 Clean dataset delivered")
		}
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		bot, err := deliver.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Could not init Telegram bot: %v", err)
		} else if err := bot.SendSummary(summary); err != nil {
			log.Printf("⚠️ Could not send Telegram summary: %v", err)
		}
	}

	log.Println("🏁 Execution finished.")
}
