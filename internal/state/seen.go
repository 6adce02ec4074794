package state

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
)

const seenIDsFile = "seen_ids.json"

// SeenIDs is the cross-run memory of already-emitted job ids, used by the
// network pipeline's incremental mode. It has no date scoping and grows
// monotonically until explicitly cleared.
type SeenIDs struct {
	path string
	ids  mapset.Set[string]
}

// LoadSeenIDs reads seen_ids.json from cacheDir. Missing or corrupt files
// yield an empty set.
func LoadSeenIDs(cacheDir string) *SeenIDs {
	s := &SeenIDs{
		path: filepath.Join(cacheDir, seenIDsFile),
		ids:  mapset.NewSet[string](),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Could not read %s: %v — starting empty", seenIDsFile, err)
		}
		return s
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		log.Printf("⚠️ Corrupt %s: %v — starting empty", seenIDsFile, err)
		return s
	}
	s.ids.Append(arr...)
	return s
}

// Has reports whether id was emitted by a previous run.
func (s *SeenIDs) Has(id string) bool {
	return id != "" && s.ids.Contains(id)
}

// Add records ids; empty strings are ignored.
func (s *SeenIDs) Add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			s.ids.Add(id)
		}
	}
}

// Len reports how many ids are remembered.
func (s *SeenIDs) Len() int {
	return s.ids.Cardinality()
}

// Save rewrites the set to disk, creating the cache dir as needed.
func (s *SeenIDs) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.ids.ToSlice(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
