package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"editpad/internal/tui/state"
	"editpad/internal/tui/util"
)

// View renders buffer status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	style := chipStyle(t)
	return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.EDITED:
		return "Edited"
	case state.MULTILINE:
		return "Multiline"
	case state.GROWN:
		return fmt.Sprintf("Grown x%d", t.Value)
	case state.BUF_LEN:
		return fmt.Sprintf("Len %d", t.Value)
	case state.BUF_CAP:
		return fmt.Sprintf("Cap %d", t.Value)
	default:
		return "Tag"
	}
}

var palette = util.DefaultPalette()

func chipStyle(t state.Tag) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	light := base.Foreground(lipgloss.Color("#FFFFFF"))
	dark := base.Foreground(lipgloss.Color("#111111"))
	switch t.Kind {
	case state.EDITED:
		return light.Background(palette.Primary)
	case state.MULTILINE:
		return light.Background(palette.Success)
	case state.GROWN:
		return dark.Background(palette.Warning)
	case state.BUF_LEN:
		return light.Background(palette.Muted)
	case state.BUF_CAP:
		return light.Background(palette.Accent)
	default:
		return base
	}
}
