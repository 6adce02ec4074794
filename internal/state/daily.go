// Cross-run persisted state: the per-day quota ledger and the monotonic
// seen-ids set used for incremental output.

package state

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"
)

const dailyStateFile = "google_cse_state.json"

// DailyState tracks quota spend and discovered URLs for one calendar day.
// QueriesMade only increases within a day; a date rollover resets both
// fields. SeenURLs is consulted to skip rework but the numeric counter is
// what bounds the budget.
type DailyState struct {
	Date        string   `json:"date"`
	QueriesMade int      `json:"queries_made"`
	SeenURLs    []string `json:"seen_urls"`
}

// DailyStore loads and saves DailyState documents under a cache directory.
type DailyStore struct {
	dir string
	now func() time.Time
}

// NewDailyStore creates a store rooted at cacheDir.
func NewDailyStore(cacheDir string) *DailyStore {
	return &DailyStore{dir: cacheDir, now: time.Now}
}

// today returns the local ISO calendar date.
func (s *DailyStore) today() string {
	return s.now().Format("2006-01-02")
}

// Load reads the persisted state. A missing, unreadable or invalid file is
// treated as no history, never as fatal; a stale date rolls the state over
// to a fresh one for today.
func (s *DailyStore) Load() DailyState {
	fresh := DailyState{Date: s.today()}

	data, err := os.ReadFile(filepath.Join(s.dir, dailyStateFile))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Could not read quota state: %v — starting fresh", err)
		}
		return fresh
	}

	var st DailyState
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("⚠️ Corrupt quota state: %v — starting fresh", err)
		return fresh
	}

	if st.Date != fresh.Date {
		// new day, new budget
		return fresh
	}
	if st.QueriesMade < 0 {
		st.QueriesMade = 0
	}
	return st
}

// Save rewrites the full state document, creating the cache dir as needed.
// Callers run this exactly once per run from a deferred block so a mid-run
// crash or an early quota stop still persists what was consumed.
func (s *DailyStore) Save(st DailyState) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, dailyStateFile), data, 0644)
}
