package helpoverlay

import (
	"fmt"
	"strings"

	"editpad/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current display mode indicated.
func (HelpOverlay) View(s state.UIState) string {
	mode := "single-line"
	if s.Display == state.Expanded {
		mode = "multi-line"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"List", []string{"↑/↓ or j/k: move", "enter: edit value", "a: add snippet", "q: quit"}},
		{"Editor", []string{"ctrl+s: commit", "esc: cancel", "ctrl+e: single/multi line", "ctrl+w: wrap on/off", "enter: newline (multi) / commit (single)"}},
		{"Clipboard", []string{"ctrl+y: yank text", "ctrl+p: paste"}},
		{"Diff", []string{"ctrl+d: preview changes", "v: unified/side-by-side", "h/l: scroll columns"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Editor: %s)\n", mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
