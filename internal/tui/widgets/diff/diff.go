package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"editpad/internal/tui/state"
)

var (
	delLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint    = lipgloss.NewStyle().Faint(true)
	hdrStyle = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the seed-vs-current diff. Unified mode shows +/- lines with
// char-level highlights where line counts align; SideBySide aligns two
// columns with a separator, honoring the horizontal scroll offsets.
func (DiffView) View(s state.UIState, seed, current string) string {
	if s.View == state.SideBySide {
		return sideBySide(s, seed, current)
	}
	return unified(seed, current)
}

func unified(seed, current string) string {
	var sb strings.Builder
	sb.WriteString(hdrStyle.Render("SEED vs CURRENT (Unified)") + "\n")
	if seed == current {
		sb.WriteString("No changes\n")
		return sb.String()
	}
	sLines := strings.Split(seed, "\n")
	cLines := strings.Split(current, "\n")
	// Heuristic: if line counts match, do per-line char highlight; otherwise
	// show raw blocks.
	if len(sLines) == len(cLines) && len(sLines) > 0 {
		for i := 0; i < len(sLines); i++ {
			sl := sLines[i]
			cl := cLines[i]
			if sl == cl {
				if strings.TrimSpace(sl) == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(faint.Render(sl))
				sb.WriteString("\n")
				continue
			}
			d := dmp.New()
			diffs := d.DiffMain(sl, cl, false)
			d.DiffCleanupSemantic(diffs)
			sb.WriteString(delLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(delChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(delLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
			sb.WriteString(addLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(addChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(addLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}
	for _, l := range sLines {
		sb.WriteString(delLine.Render("- ") + l + "\n")
	}
	sb.WriteString("\n")
	for _, l := range cLines {
		sb.WriteString(addLine.Render("+ ") + l + "\n")
	}
	return sb.String()
}

func sideBySide(s state.UIState, seed, current string) string {
	const sep = " │ "
	left := strings.Split(seed, "\n")
	right := strings.Split(current, "\n")
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - len([]rune(sep))) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	var sb strings.Builder
	sb.WriteString(hdrStyle.Render("SEED │ CURRENT") + "\n")
	for i := 0; i < max; i++ {
		var sl, cl string
		if i < len(left) {
			sl = left[i]
		}
		if i < len(right) {
			cl = right[i]
		}
		if sl == cl {
			l := pad(clip(sl, colWidth, s.ScrollHLeft), colWidth)
			sb.WriteString(faint.Render(l) + sep + faint.Render(clip(cl, colWidth, s.ScrollHRight)) + "\n")
			continue
		}
		d := dmp.New()
		diffs := d.DiffMain(sl, cl, false)
		d.DiffCleanupSemantic(diffs)
		var lbuf, rbuf strings.Builder
		var lraw, rraw strings.Builder
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				lbuf.WriteString(delChar.Render(df.Text))
				lraw.WriteString(df.Text)
			case dmp.DiffInsert:
				rbuf.WriteString(addChar.Render(df.Text))
				rraw.WriteString(df.Text)
			case dmp.DiffEqual:
				lbuf.WriteString(delLine.Render(df.Text))
				rbuf.WriteString(addLine.Render(df.Text))
				lraw.WriteString(df.Text)
				rraw.WriteString(df.Text)
			}
		}
		// Pad on raw rune width; styled strings carry escape bytes.
		lpad := colWidth - len([]rune(lraw.String())) - 2
		if lpad < 0 {
			lpad = 0
		}
		sb.WriteString(delLine.Render("- ") + lbuf.String() + strings.Repeat(" ", lpad))
		sb.WriteString(sep)
		sb.WriteString(addLine.Render("+ ") + rbuf.String() + "\n")
	}
	return sb.String()
}

func clip(s string, width, start int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start >= len(runes) {
		return ""
	}
	end := start + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

func pad(s string, width int) string {
	if w := len([]rune(s)); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
