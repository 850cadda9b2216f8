// Package snippet models the on-disk snippet file: an ordered list of named
// text values the TUI edits in place.
package snippet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Entry is one named text value.
type Entry struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// File is the full snippet store, order-preserving.
type File struct {
	Entries []Entry `json:"snippets"`
}

// Load reads a snippet file. A missing file yields an empty store so a fresh
// working directory just works.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read snippet file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse snippet file: %w", err)
	}
	for i := range f.Entries {
		if f.Entries[i].ID == "" {
			f.Entries[i].ID = uuid.NewString()
		}
	}
	return &f, nil
}

// Save writes the store back, pretty-printed for hand editing.
func Save(path string, f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Get returns the entry with the given ID.
func (f *File) Get(id string) (*Entry, bool) {
	for i := range f.Entries {
		if f.Entries[i].ID == id {
			return &f.Entries[i], true
		}
	}
	return nil, false
}

// Set replaces the value of the entry with the given ID and stamps it.
// Returns false if no such entry exists.
func (f *File) Set(id, value string) bool {
	e, ok := f.Get(id)
	if !ok {
		return false
	}
	e.Value = value
	e.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return true
}

// Add appends a new entry and returns it.
func (f *File) Add(key, value string) *Entry {
	f.Entries = append(f.Entries, Entry{
		ID:        uuid.NewString(),
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return &f.Entries[len(f.Entries)-1]
}
