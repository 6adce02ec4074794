// Uploads a CSV artifact to the automation webhook.

package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"time"

	"go-jobradar/internal/config"
	"go-jobradar/internal/deliver"
)

func main() {
	file := flag.String("file", "", "CSV to upload (defaults to the clean dataset)")
	flag.Parse()

	cfg := config.Load()
	path := *file
	if path == "" {
		path = filepath.Join(cfg.DataPath, cfg.CleanOutFile)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	wh := deliver.NewWebhook(cfg.WebhookURL, cfg.WebhookToken)
	if err := wh.Upload(ctx, path); err != nil {
		log.Fatalf("❌ Delivery failed: %v", err)
	}
	log.Printf("📤 Delivered %s", path)
}
