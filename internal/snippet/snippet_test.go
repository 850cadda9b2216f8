package snippet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(f.Entries) != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestRoundTripPreservesOrderAndValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.json")
	f := &File{}
	f.Add("greeting", "hello")
	f.Add("sig", "line1\nline2")

	if err := Save(path, f); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("entry count %d", len(got.Entries))
	}
	if got.Entries[0].Key != "greeting" || got.Entries[1].Key != "sig" {
		t.Fatalf("order not preserved: %+v", got.Entries)
	}
	if got.Entries[1].Value != "line1\nline2" {
		t.Fatalf("multiline value mangled: %q", got.Entries[1].Value)
	}
}

func TestSetStampsAndReplaces(t *testing.T) {
	f := &File{}
	e := f.Add("k", "old")
	if !f.Set(e.ID, "new") {
		t.Fatalf("Set reported missing entry")
	}
	got, ok := f.Get(e.ID)
	if !ok || got.Value != "new" || got.UpdatedAt == "" {
		t.Fatalf("Set did not apply: %+v", got)
	}
	if f.Set("no-such-id", "x") {
		t.Fatalf("Set on unknown ID should fail")
	}
}

func TestLoadAssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.json")
	raw := []byte(`{"snippets":[{"key":"k","value":"v"}]}`)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Entries[0].ID == "" {
		t.Fatalf("expected ID assigned on load")
	}
}
