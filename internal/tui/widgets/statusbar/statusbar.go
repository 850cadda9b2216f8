package statusbar

import (
	"fmt"
	"strings"

	"editpad/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state plus the
// active buffer's len/cap counter.
func (StatusBar) View(s state.UIState, length, capacity int) string {
	mode := "[single]"
	if s.Display == state.Expanded {
		mode = "[multi]"
	}
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}
	counter := fmt.Sprintf("%d/%d", length, capacity)
	width := fmt.Sprintf("W:%d", s.Width)

	parts := []string{mode, wrap, counter, width}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
