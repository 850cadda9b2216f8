package textedit

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"editpad/internal/textbuf"
	"editpad/internal/tui/state"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(p *Panel, s string) {
	for _, r := range s {
		if r == '\n' {
			p.Update(tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		p.Update(keyRunes(string(r)))
	}
}

func TestConstructionSeedsBufferAndMode(t *testing.T) {
	p := New("p1", "edit", "hello", nil)
	if p.Text() != "hello" {
		t.Fatalf("seed read back %q", p.Text())
	}
	length, capacity := p.Counter()
	if length != 5 || capacity < length+1 {
		t.Fatalf("counter %d/%d violates invariant", length, capacity)
	}
	if p.DisplayMode() != state.Collapsed {
		t.Fatalf("seed without newline should start collapsed")
	}

	p = New("p2", "edit", "line1\nline2", nil)
	if p.DisplayMode() != state.Expanded {
		t.Fatalf("seed with newline should start expanded")
	}
}

func TestSeedWithEmbeddedNulTruncated(t *testing.T) {
	p := New("p1", "edit", "abc\x00def", nil)
	if p.Text() != "abc" {
		t.Fatalf("expected NUL truncation, got %q", p.Text())
	}
}

func TestConfirmInvokesCallbackOnceThenRemoval(t *testing.T) {
	var got []string
	p := New("p1", "edit", "hello", func(s string) { got = append(got, s) })
	typeText(p, " world")
	p.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(got) != 1 || got[0] != "hello world" {
		t.Fatalf("expected single commit of %q, got %v", "hello world", got)
	}
	if !p.Done() {
		t.Fatalf("panel should be marked for removal after confirm")
	}
	// at-most-once even if confirmed again
	p.Confirm()
	if len(got) != 1 {
		t.Fatalf("callback ran %d times", len(got))
	}
}

func TestCancelNeverInvokesCallback(t *testing.T) {
	calls := 0
	p := New("p1", "edit", "hello", func(string) { calls++ })
	typeText(p, "xxx")
	p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if calls != 0 {
		t.Fatalf("cancel must not invoke the callback")
	}
	if !p.Done() {
		t.Fatalf("panel should be marked for removal after cancel")
	}
}

func TestEnterConfirmsInCollapsedMode(t *testing.T) {
	var got string
	p := New("p1", "edit", "value", func(s string) { got = s })
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got != "value" || !p.Done() {
		t.Fatalf("enter in collapsed mode should commit; got %q done=%v", got, p.Done())
	}
}

func TestEnterInsertsNewlineInExpandedMode(t *testing.T) {
	p := New("p1", "edit", "a\nb", nil)
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Text() != "a\nb\n" {
		t.Fatalf("expected trailing newline, got %q", p.Text())
	}
	if p.Done() {
		t.Fatalf("enter in expanded mode must not commit")
	}
}

func TestToggleIsIdempotentUnderDoubleInvocation(t *testing.T) {
	p := New("p1", "edit", "one\ntwo", nil)
	start := p.DisplayMode()
	text := p.Text()
	p.ToggleDisplayMode()
	p.ToggleDisplayMode()
	if p.DisplayMode() != start {
		t.Fatalf("double toggle changed display mode")
	}
	if p.Text() != text {
		t.Fatalf("toggle altered buffer content: %q", p.Text())
	}
}

func TestExpandRequestsDefaultSize(t *testing.T) {
	p := New("p1", "edit", "flat", nil)
	p.ToggleDisplayMode()
	w, h := p.RequestedSize()
	if w != ExpandedWidth || h != ExpandedHeight {
		t.Fatalf("expanded panel requested %dx%d", w, h)
	}
}

func TestEditingGrowsBuffer(t *testing.T) {
	p := New("p1", "edit", "", nil)
	typeText(p, strings.Repeat("a", 2*textbuf.GrowIncrement))
	length, capacity := p.Counter()
	if length != 2*textbuf.GrowIncrement {
		t.Fatalf("length %d after typing", length)
	}
	if capacity-length < textbuf.LowWater {
		t.Fatalf("spare %d below low-water after edits", capacity-length)
	}
	if p.Text() != strings.Repeat("a", 2*textbuf.GrowIncrement) {
		t.Fatalf("content corrupted across growth")
	}
}

func TestBackspaceAndCursorMovement(t *testing.T) {
	p := New("p1", "edit", "abc", nil)
	p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if p.Text() != "ab" {
		t.Fatalf("backspace: %q", p.Text())
	}
	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	typeText(p, "z")
	if p.Text() != "zab" {
		t.Fatalf("insert at cursor: %q", p.Text())
	}
	p.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if p.Text() != "zb" {
		t.Fatalf("forward delete: %q", p.Text())
	}
}

func TestCollapsedInsertFlattensNewlines(t *testing.T) {
	p := New("p1", "edit", "flat", nil)
	p.insert("a\nb")
	if strings.Contains(p.Text(), "\n") {
		t.Fatalf("collapsed insert kept a newline: %q", p.Text())
	}
}

func TestMarkForRemovalIdempotent(t *testing.T) {
	p := New("p1", "edit", "x", nil)
	p.MarkForRemoval()
	p.MarkForRemoval()
	if !p.Done() {
		t.Fatalf("expected done after MarkForRemoval")
	}
}

func TestViewShowsTitleCounterAndHints(t *testing.T) {
	p := New("p1", "snippet: greeting", "hello", nil)
	p.SetNoColor(true)
	out := p.View(100, 30)
	if !strings.Contains(out, "snippet: greeting") {
		t.Fatalf("missing title: %s", out)
	}
	if !strings.Contains(out, "Len 5") {
		t.Fatalf("missing length chip: %s", out)
	}
	if !strings.Contains(out, "Cap ") {
		t.Fatalf("missing capacity chip: %s", out)
	}
	if !strings.Contains(out, "ctrl+s commit") {
		t.Fatalf("missing key hints: %s", out)
	}
}

func TestDiffPreviewToggle(t *testing.T) {
	p := New("p1", "edit", "hello", nil)
	p.SetNoColor(true)
	typeText(p, "!")
	p.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	out := p.View(100, 30)
	if !strings.Contains(out, "SEED vs CURRENT") {
		t.Fatalf("expected diff preview in view: %s", out)
	}
	// esc closes the preview without cancelling the panel
	p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if p.Done() {
		t.Fatalf("closing diff preview must not cancel the panel")
	}
	out = p.View(100, 30)
	if strings.Contains(out, "SEED vs CURRENT") {
		t.Fatalf("diff preview still showing after close")
	}
}

func TestUpDownMovesBetweenLines(t *testing.T) {
	p := New("p1", "edit", "alpha\nbeta", nil)
	// cursor starts at end of "beta"
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	typeText(p, "X")
	if p.Text() != "alphXa\nbeta" {
		t.Fatalf("up+insert landed at %q", p.Text())
	}
}
