package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"editpad/internal/tui/util"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

const previewLimit = 48

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Snippets — "+m.path) + "\n")
	if len(m.store.Entries) == 0 {
		b.WriteString("No snippets yet. Press a to add one.\n")
	} else {
		for i, e := range m.store.Entries {
			preview := util.Ellipsize(util.FirstLine(e.Value), previewLimit)
			multi := ""
			if strings.Contains(e.Value, "\n") {
				multi = faintStyle.Render(fmt.Sprintf(" (+%d lines)", strings.Count(e.Value, "\n")))
			}
			line := fmt.Sprintf("  %-20s %s%s", e.Key, preview, multi)
			if i == m.cursor {
				line = selStyle.Render(fmt.Sprintf("> %-20s %s", e.Key, preview)) + multi
			}
			b.WriteString(line + "\n")
			if i == m.cursor && e.UpdatedAt != "" {
				b.WriteString(faintStyle.Render("    updated "+e.UpdatedAt) + "\n")
			}
		}
	}
	b.WriteString("\nEnter: edit   a: add   j/k: move   ?: help   q: quit\n")
	if strings.TrimSpace(*m.status) != "" {
		b.WriteString(faintStyle.Render(*m.status) + "\n")
	}
	return b.String()
}
