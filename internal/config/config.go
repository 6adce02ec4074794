// Load envs from .env
// Load YAML config
// Apply env overrides and defaults

package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// search vocabulary
	Roles            []string `yaml:"roles"`
	BannedTitleWords []string `yaml:"banned_title_words"`
	Skills           []string `yaml:"skills"`

	// geography and facets
	Location    string   `yaml:"location"`
	Experiences []string `yaml:"experiences"`
	DateWindow  string   `yaml:"date_window"`

	// CSE source
	CSEKey       string `yaml:"cse_key" env:"GOOGLE_CSE_KEY"`
	CSECX        string `yaml:"cse_cx" env:"GOOGLE_CX"`
	DateRestrict string `yaml:"date_restrict" env:"DATE_RESTRICT"`
	DailyBudget  int    `yaml:"daily_query_budget" env:"DAILY_QUERY_BUDGET"`
	PagesPerRole int    `yaml:"max_pages_per_role" env:"MAX_PAGES_PER_ROLE"`

	// concurrency and pacing
	QueryConcurrency  int           `yaml:"query_concurrency"`
	EnrichConcurrency int           `yaml:"enrich_concurrency"`
	QueryPause        time.Duration `yaml:"query_pause"`
	EnrichBatchPause  time.Duration `yaml:"enrich_batch_pause"`

	// output and cross-run state
	CachePath       string `yaml:"cache_path"`
	DataPath        string `yaml:"data_path"`
	CSEOutFile      string `yaml:"cse_out_file" env:"OUT_CSV"`
	NetworkOutFile  string `yaml:"network_out_file"`
	CleanOutFile    string `yaml:"clean_out_file"`
	AuditOutFile    string `yaml:"audit_out_file"`
	IncrementalMode bool   `yaml:"incremental_mode" env:"INCREMENTAL_MODE"`
	PersistSeen     bool   `yaml:"persist_seen"`

	// delivery
	WebhookURL     string `yaml:"webhook_url" env:"N8N_WEBHOOK_URL"`
	WebhookToken   string `yaml:"webhook_token" env:"N8N_AUTH_TOKEN"`
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{PersistSeen: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GOOGLE_CSE_KEY"); v != "" {
		c.CSEKey = v
	}
	if v := os.Getenv("GOOGLE_CX"); v != "" {
		c.CSECX = v
	}
	if v := os.Getenv("DATE_RESTRICT"); v != "" {
		c.DateRestrict = v
	}
	if v := os.Getenv("DAILY_QUERY_BUDGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid DAILY_QUERY_BUDGET: %v", err)
		}
		c.DailyBudget = n
	}
	if v := os.Getenv("MAX_PAGES_PER_ROLE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid MAX_PAGES_PER_ROLE: %v", err)
		}
		c.PagesPerRole = n
	}
	if v := os.Getenv("OUT_CSV"); v != "" {
		c.CSEOutFile = v
	}
	if v := os.Getenv("INCREMENTAL_MODE"); v != "" {
		c.IncrementalMode = v == "true" || v == "1"
	}
	if v := os.Getenv("N8N_WEBHOOK_URL"); v != "" {
		c.WebhookURL = v
	}
	if v := os.Getenv("N8N_AUTH_TOKEN"); v != "" {
		c.WebhookToken = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		c.TelegramChatID = id
	}
}

func (c *Config) applyDefaults() {
	if c.Location == "" {
		c.Location = "India"
	}
	if len(c.Experiences) == 0 {
		c.Experiences = []string{"internship", "entry level", "associate"}
	}
	if c.DateWindow == "" {
		c.DateWindow = "24hr"
	}
	if c.DateRestrict == "" {
		c.DateRestrict = "d7"
	}
	if c.DailyBudget == 0 {
		// free tier is ~100/day; stay below to avoid surprise 429s
		c.DailyBudget = 90
	}
	if c.PagesPerRole == 0 {
		c.PagesPerRole = 2
	}
	if c.QueryConcurrency == 0 {
		c.QueryConcurrency = 3
	}
	if c.EnrichConcurrency == 0 {
		c.EnrichConcurrency = 6
	}
	if c.QueryPause == 0 {
		c.QueryPause = 250 * time.Millisecond
	}
	if c.EnrichBatchPause == 0 {
		c.EnrichBatchPause = 250 * time.Millisecond
	}
	if c.CachePath == "" {
		c.CachePath = ".cache"
	}
	if c.DataPath == "" {
		c.DataPath = "data"
	}
	if c.CSEOutFile == "" {
		c.CSEOutFile = "google_jobs.csv"
	}
	if c.NetworkOutFile == "" {
		c.NetworkOutFile = "results.csv"
	}
	if c.CleanOutFile == "" {
		c.CleanOutFile = "combined_results.csv"
	}
	if c.AuditOutFile == "" {
		c.AuditOutFile = "combined_results_all.csv"
	}
}

// ValidateCSE checks the credentials the CSE pipeline cannot run without.
// Missing credentials are a fatal config condition for that pipeline.
func (c *Config) ValidateCSE() error {
	if c.CSEKey == "" || c.CSECX == "" {
		return errors.New("missing GOOGLE_CSE_KEY or GOOGLE_CX")
	}
	return nil
}
