// Delimited-text input/output for the pipeline's artifacts.

package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go-jobradar/internal/model"
)

// utf8BOM makes spreadsheet tools detect the encoding on the CSE artifact.
const utf8BOM = "\xEF\xBB\xBF"

// WriteJobs writes rows in the fixed column order, creating the containing
// directory as needed.
func WriteJobs(path string, jobs []model.Job, withBOM bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if withBOM {
		if _, err := f.WriteString(utf8BOM); err != nil {
			return err
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns()); err != nil {
		return err
	}
	for _, j := range jobs {
		if err := w.Write(j.Values()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadRows reads a CSV into header-keyed maps, tolerantly: BOM stripped,
// variable field counts accepted, short rows padded, blank lines skipped.
// A missing file yields no rows and no error — a source that did not run is
// simply absent from the merge.
func ReadRows(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	text := strings.TrimPrefix(string(data), utf8BOM)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		empty := true
		for i, h := range header {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[h] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// FindNewest returns the newest non-empty file in dir whose base name
// matches pattern, or "" when none exists.
func FindNewest(dir string, pattern *regexp.Regexp) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var best string
	var bestMod int64
	for _, e := range entries {
		if e.IsDir() || !pattern.MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Size() == 0 {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best = filepath.Join(dir, e.Name())
			bestMod = mod
		}
	}
	return best
}
