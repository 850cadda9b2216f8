package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if c.SnippetFile != "snippets.json" || c.HistoryLimit != 200 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadFillsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"no_color": true}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.NoColor {
		t.Fatalf("explicit field lost")
	}
	if c.SnippetFile == "" || c.HistoryLimit == 0 {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := &Config{SnippetFile: "work.json", HistoryLimit: 50}
	if err := Save(path, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SnippetFile != "work.json" || got.HistoryLimit != 50 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	cp := Clone(c)
	cp.SnippetFile = "other.json"
	if c.SnippetFile == "other.json" {
		t.Fatalf("clone aliased the original")
	}
}
