// Package textedit implements the overlay panel for editing a single text
// value. The panel owns a growable zero-terminated buffer seeded from an
// initial string, renders a single-line (collapsed) or multi-line (expanded)
// field, and delivers the final text to a commit callback at most once.
package textedit

import (
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editpad/internal/textbuf"
	"editpad/internal/tui/state"
	diffview "editpad/internal/tui/widgets/diff"
	chips "editpad/internal/tui/widgets/tagchips"
	"editpad/internal/tui/util"
)

// Default on-screen size requested when a panel expands, in cells.
const (
	ExpandedWidth  = 72
	ExpandedHeight = 12
)

// KeyMap holds the panel's key bindings.
type KeyMap struct {
	Confirm    key.Binding
	Cancel     key.Binding
	ToggleMode key.Binding
	ToggleDiff key.Binding
	Yank       key.Binding
	Paste      key.Binding
	Wrap       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "commit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ToggleMode: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "mode")),
		ToggleDiff: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "diff")),
		Yank:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "yank")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "paste")),
		Wrap:       key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "wrap")),
	}
}

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// Panel is one live text-edit overlay. It satisfies the host's Panel
// interface: the host calls Update and View once per frame and reaps the
// panel after a frame in which Done reports true.
type Panel struct {
	id    string
	title string
	seed  string

	buf    *textbuf.Buffer
	cursor int // byte offset into the buffer content

	ui       state.UIState
	keys     KeyMap
	noColor  bool
	showDiff bool

	reqW, reqH int

	onCommit  func(string)
	committed bool
	done      bool
}

// New constructs a panel seeded with seed. The display mode starts Expanded
// when the seed contains a newline, Collapsed otherwise. onCommit is invoked
// at most once, on explicit confirmation, strictly before removal.
func New(id, title, seed string, onCommit func(string)) *Panel {
	p := &Panel{
		id:       id,
		title:    title,
		buf:      textbuf.New(seed),
		keys:     DefaultKeyMap(),
		onCommit: onCommit,
		reqW:     ExpandedWidth,
		reqH:     ExpandedHeight,
	}
	p.seed = p.buf.String() // normalized: NUL-truncated by textbuf
	p.cursor = p.buf.Len()
	p.ui.MinCol = 24
	if strings.Contains(p.seed, "\n") {
		p.ui.Display = state.Expanded
	}
	return p
}

// SetNoColor disables colored chrome (chips honor NO_COLOR as well).
func (p *Panel) SetNoColor(v bool) { p.noColor = v }

func (p *Panel) ID() string    { return p.id }
func (p *Panel) Title() string { return p.title }

// Text returns the current buffer content.
func (p *Panel) Text() string { return p.buf.String() }

// Counter reports the buffer's logical length and capacity.
func (p *Panel) Counter() (length, capacity int) { return p.buf.Len(), p.buf.Cap() }

// UIState exposes the panel's UI state for the host status bar.
func (p *Panel) UIState() state.UIState { return p.ui }

// DisplayMode reports the current display mode.
func (p *Panel) DisplayMode() state.DisplayMode { return p.ui.Display }

// Done reports whether the panel has been marked for removal. The host reaps
// done panels between frames, never during one.
func (p *Panel) Done() bool { return p.done }

// Committed reports whether the commit callback has run.
func (p *Panel) Committed() bool { return p.committed }

// MarkForRemoval flags the panel for removal after the current frame.
// Idempotent.
func (p *Panel) MarkForRemoval() { p.done = true }

// ToggleDisplayMode flips Collapsed/Expanded without touching the buffer.
// Transitioning to Expanded (re)requests the default expanded size.
func (p *Panel) ToggleDisplayMode() {
	p.ui = state.ToggleDisplay(p.ui)
	if p.ui.Display == state.Expanded {
		p.reqW, p.reqH = ExpandedWidth, ExpandedHeight
	}
}

// RequestedSize returns the on-screen size the panel wants when expanded.
func (p *Panel) RequestedSize() (w, h int) { return p.reqW, p.reqH }

// Confirm invokes the commit callback with the current content (at most
// once) and marks the panel for removal.
func (p *Panel) Confirm() {
	if !p.committed && p.onCommit != nil {
		p.onCommit(p.buf.String())
		p.committed = true
	}
	p.MarkForRemoval()
}

// Cancel marks the panel for removal without invoking the callback.
func (p *Panel) Cancel() { p.MarkForRemoval() }

// Update handles one frame's input for the panel.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.ui = state.Resize(p.ui, msg.Width)
		return nil
	case tea.KeyMsg:
		if p.showDiff {
			return p.updateDiff(msg)
		}
		return p.updateEdit(msg)
	}
	return nil
}

func (p *Panel) updateDiff(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.ToggleDiff), key.Matches(msg, p.keys.Cancel):
		p.showDiff = false
		return nil
	}
	switch msg.String() {
	case "v":
		p.ui = state.ToggleView(p.ui)
	case "h":
		p.ui = state.ScrollLeft(p.ui, false, true)
		p.ui = state.ScrollLeft(p.ui, false, false)
	case "l":
		p.ui = state.ScrollRight(p.ui, false, true)
		p.ui = state.ScrollRight(p.ui, false, false)
	}
	return nil
}

func (p *Panel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	p.ui.Notice = ""
	switch {
	case key.Matches(msg, p.keys.Confirm):
		p.Confirm()
		return nil
	case key.Matches(msg, p.keys.Cancel):
		p.Cancel()
		return nil
	case key.Matches(msg, p.keys.ToggleMode):
		p.ToggleDisplayMode()
		return nil
	case key.Matches(msg, p.keys.ToggleDiff):
		p.showDiff = true
		return nil
	case key.Matches(msg, p.keys.Yank):
		if err := clipboard.WriteAll(p.buf.String()); err != nil {
			p.ui.Notice = "yank failed: " + err.Error()
		} else {
			p.ui.Notice = "yanked"
		}
		return nil
	case key.Matches(msg, p.keys.Paste):
		s, err := clipboard.ReadAll()
		if err != nil {
			p.ui.Notice = "paste failed: " + err.Error()
			return nil
		}
		p.insert(s)
		return nil
	case key.Matches(msg, p.keys.Wrap):
		p.ui = state.ToggleWrap(p.ui)
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		p.insert(string(msg.Runes))
	case tea.KeySpace:
		p.insert(" ")
	case tea.KeyEnter:
		if p.ui.Display == state.Expanded {
			p.insert("\n")
		} else {
			p.Confirm()
		}
	case tea.KeyBackspace:
		p.backspace()
	case tea.KeyDelete:
		p.deleteForward()
	case tea.KeyLeft:
		p.moveLeft()
	case tea.KeyRight:
		p.moveRight()
	case tea.KeyUp:
		p.moveLine(-1)
	case tea.KeyDown:
		p.moveLine(1)
	case tea.KeyHome:
		start, _ := p.lineBounds(p.cursor)
		p.cursor = start
	case tea.KeyEnd:
		_, end := p.lineBounds(p.cursor)
		p.cursor = end
	}
	return nil
}

// insert routes every edit through the buffer so the low-water growth policy
// applies. Collapsed panels flatten newlines to spaces.
func (p *Panel) insert(s string) {
	if s == "" {
		return
	}
	if p.ui.Display == state.Collapsed {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	p.buf.InsertAt(p.cursor, s)
	p.cursor += len(s)
}

func (p *Panel) backspace() {
	if p.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(p.buf.String()[:p.cursor])
	p.buf.DeleteRange(p.cursor-size, p.cursor)
	p.cursor -= size
}

func (p *Panel) deleteForward() {
	text := p.buf.String()
	if p.cursor >= len(text) {
		return
	}
	_, size := utf8.DecodeRuneInString(text[p.cursor:])
	p.buf.DeleteRange(p.cursor, p.cursor+size)
}

func (p *Panel) moveLeft() {
	if p.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(p.buf.String()[:p.cursor])
	p.cursor -= size
}

func (p *Panel) moveRight() {
	text := p.buf.String()
	if p.cursor >= len(text) {
		return
	}
	_, size := utf8.DecodeRuneInString(text[p.cursor:])
	p.cursor += size
}

// lineBounds returns the byte offsets of the start and end of the line
// containing off (end excludes the newline).
func (p *Panel) lineBounds(off int) (start, end int) {
	text := p.buf.String()
	start = strings.LastIndexByte(text[:off], '\n') + 1
	end = len(text)
	if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
		end = off + i
	}
	return start, end
}

func (p *Panel) moveLine(delta int) {
	if p.ui.Display != state.Expanded {
		return
	}
	text := p.buf.String()
	start, end := p.lineBounds(p.cursor)
	col := p.cursor - start
	if delta < 0 {
		if start == 0 {
			return
		}
		prevStart, _ := p.lineBounds(start - 1)
		prevLen := (start - 1) - prevStart
		if col > prevLen {
			col = prevLen
		}
		p.cursor = prevStart + col
		return
	}
	if end >= len(text) {
		return
	}
	nextStart := end + 1
	_, nextEnd := p.lineBounds(nextStart)
	nextLen := nextEnd - nextStart
	if col > nextLen {
		col = nextLen
	}
	p.cursor = nextStart + col
}

// View renders the panel into the available area. width/height are the cells
// the host offers; an expanded panel uses its requested size clamped to the
// offer, a collapsed one auto-sizes to its content.
func (p *Panel) View(width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	inner := p.innerWidth(width)
	var body string
	if p.showDiff {
		dv := diffview.NewDiffView()
		ds := p.ui
		if ds.Width == 0 || ds.Width > inner {
			ds.Width = inner
		}
		body = dv.View(ds, p.seed, p.buf.String())
	} else if p.ui.Display == state.Expanded {
		body = p.viewExpanded(inner, p.bodyHeight(height))
	} else {
		body = p.viewCollapsed(inner)
	}

	tags := util.ComputeTags(p.seed, p.buf.String(), p.buf.Cap(), p.buf.Grows())
	header := titleStyle.Render(p.title)
	if c := chips.View(tags, p.noColor); c != "" {
		header += "  " + c
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(body + "\n")
	b.WriteString(faintStyle.Render(p.hints()))
	if p.ui.Notice != "" {
		b.WriteString("\n" + faintStyle.Render(p.ui.Notice))
	}
	return borderStyle.Render(b.String())
}

func (p *Panel) innerWidth(width int) int {
	// border + padding
	avail := width - 4
	if avail < 20 {
		avail = 20
	}
	if p.ui.Display == state.Expanded || p.showDiff {
		if p.reqW < avail {
			return p.reqW
		}
		return avail
	}
	// collapsed: auto-size to content within the hint line's footprint
	w := util.RuneLen(util.FirstLine(p.buf.String())) + 2
	if hw := util.RuneLen(p.hints()); w < hw {
		w = hw
	}
	if w > avail {
		w = avail
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (p *Panel) bodyHeight(height int) int {
	avail := height - 5 // border, header, hints
	if avail < 3 {
		avail = 3
	}
	if p.reqH < avail {
		return p.reqH
	}
	return avail
}

func (p *Panel) viewCollapsed(width int) string {
	text := p.buf.String()
	// The buffer may hold newlines (multiline seed toggled to collapsed):
	// display flattened without altering content. The marker is 3 bytes
	// where the newline was 1, so the cursor column shifts accordingly.
	shown := strings.ReplaceAll(text, "\n", "␤")
	col := p.cursor + 2*strings.Count(text[:p.cursor], "\n")
	return renderLineWithCursor(shown, col, width, false)
}

func (p *Panel) viewExpanded(width, height int) string {
	text := p.buf.String()
	lines := strings.Split(text, "\n")
	curLine := strings.Count(text[:p.cursor], "\n")
	lineStart := strings.LastIndexByte(text[:p.cursor], '\n') + 1
	col := p.cursor - lineStart

	// Keep the cursor's line inside the window.
	top := 0
	if curLine >= height {
		top = curLine - height + 1
	}
	end := top + height
	if end > len(lines) {
		end = len(lines)
	}

	out := make([]string, 0, height)
	for i, ln := range lines[top:end] {
		if top+i == curLine {
			out = append(out, renderLineWithCursor(ln, col, width, p.ui.Wrap))
			continue
		}
		if p.ui.Wrap {
			out = append(out, ln)
		} else {
			out = append(out, clipLine(ln, width))
		}
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// renderLineWithCursor renders a single raw line with a styled cursor cell
// at byte offset col, horizontally scrolled so the cursor stays visible.
func renderLineWithCursor(line string, col, width int, wrap bool) string {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	runes := []rune(line)
	curIdx := utf8.RuneCountInString(line[:col])
	start := 0
	if !wrap && width > 1 && curIdx >= width {
		start = curIdx - width + 1
	}
	end := len(runes)
	if !wrap && width > 1 && end > start+width-1 {
		end = start + width - 1
	}
	vis := runes[start:end]
	pos := curIdx - start
	if pos >= len(vis) {
		return string(vis) + cursorStyle.Render(" ")
	}
	return string(vis[:pos]) + cursorStyle.Render(string(vis[pos])) + string(vis[pos+1:])
}

// clipLine truncates a raw (unstyled) line to width cells.
func clipLine(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func (p *Panel) hints() string {
	bindings := []key.Binding{p.keys.Confirm, p.keys.Cancel, p.keys.ToggleMode, p.keys.ToggleDiff, p.keys.Yank, p.keys.Paste, p.keys.Wrap}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
