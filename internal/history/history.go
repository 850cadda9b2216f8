// Package history keeps an append-only journal of committed edits under the
// tool's dot directory.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = "history.json"

// Record is one committed edit.
type Record struct {
	When      string `json:"when"`
	SnippetID string `json:"snippet_id"`
	Key       string `json:"key"`
	Before    string `json:"before"`
	After     string `json:"after"`
}

// Now returns the timestamp format used for records.
func Now() string { return time.Now().UTC().Format(time.RFC3339) }

// Load reads the journal, oldest first. A missing file yields an empty list.
func Load(dir string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return recs, nil
}

// Append adds a record and rewrites the journal, dropping the oldest entries
// beyond limit (0 means unlimited).
func Append(dir string, rec Record, limit int) error {
	recs, err := Load(dir)
	if err != nil {
		return err
	}
	recs = append(recs, rec)
	if limit > 0 && len(recs) > limit {
		recs = recs[len(recs)-limit:]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), data, 0644)
}
