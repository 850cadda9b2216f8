// Package tui hosts the editpad terminal UI: a snippet list in the
// background and a stack of overlay panels in front. Panels are frame
// driven: the host routes input to the topmost panel, renders every live
// panel once per frame, and reaps panels marked done only after the frame
// that marked them has finished drawing.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editpad/internal/history"
	"editpad/internal/snippet"
	"editpad/internal/tui/state"
	help "editpad/internal/tui/widgets/helpoverlay"
	bar "editpad/internal/tui/widgets/statusbar"
	"editpad/internal/tui/widgets/textedit"
)

// Panel is the capability every overlay must provide. Panels are created
// and appended at the call site; there is no global registry.
type Panel interface {
	ID() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Done() bool
}

// reapMsg triggers removal of done panels. It is delivered through the
// command queue, so it arrives only after the current frame has rendered.
type reapMsg struct{}

func scheduleReap() tea.Cmd {
	return func() tea.Msg { return reapMsg{} }
}

// Run opens the snippet editor over the given store.
func Run(path string, store *snippet.File, dotdir string, histLimit int, noColor bool) error {
	m := NewModel(path, store, dotdir, histLimit, noColor)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Model is the host model.
type Model struct {
	store     *snippet.File
	path      string
	dotdir    string
	histLimit int
	noColor   bool

	cursor   int
	panels   []Panel
	width    int
	height   int
	showHelp bool

	// status is shared across model copies so commit callbacks, which run
	// inside a panel's Update, can report outcomes.
	status *string
}

// NewModel builds the host model around an open store.
func NewModel(path string, store *snippet.File, dotdir string, histLimit int, noColor bool) Model {
	s := ""
	return Model{
		store:     store,
		path:      path,
		dotdir:    dotdir,
		histLimit: histLimit,
		noColor:   noColor,
		status:    &s,
	}
}

// Panels exposes the live panel stack (reaped panels excluded only after a
// frame boundary).
func (m Model) Panels() []Panel { return m.panels }

func (m Model) Init() tea.Cmd { return nil }

// Update routes input to the topmost panel when one is open, otherwise to
// the snippet list.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, p := range m.panels {
			p.Update(msg)
		}
		return m, nil

	case reapMsg:
		live := m.panels[:0]
		for _, p := range m.panels {
			if p.Done() {
				m.noteOutcome(p)
				continue
			}
			live = append(live, p)
		}
		m.panels = live
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if n := len(m.panels); n > 0 {
			top := m.panels[n-1]
			if top.Done() {
				// Awaiting reap; a finished panel takes no further input.
				return m, scheduleReap()
			}
			cmd := top.Update(msg)
			if top.Done() {
				return m, tea.Batch(cmd, scheduleReap())
			}
			return m, cmd
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.store.Entries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.store.Entries) == 0 {
			return m, nil
		}
		m = m.openEditor(&m.store.Entries[m.cursor])
	case "a":
		e := m.store.Add(fmt.Sprintf("snippet-%d", len(m.store.Entries)+1), "")
		m.cursor = len(m.store.Entries) - 1
		m = m.openEditor(e)
	case "?":
		m.showHelp = true
	}
	return m, nil
}

// openEditor pushes a text-edit panel for the entry. The commit callback
// owns persistence: it writes the store, then journals the edit.
func (m Model) openEditor(e *snippet.Entry) Model {
	store, path, dotdir, limit := m.store, m.path, m.dotdir, m.histLimit
	status := m.status
	id, key, before := e.ID, e.Key, e.Value

	p := textedit.New(id, "snippet: "+key, before, func(text string) {
		store.Set(id, text)
		if err := snippet.Save(path, store); err != nil {
			*status = "save failed: " + err.Error()
			return
		}
		rec := history.Record{When: history.Now(), SnippetID: id, Key: key, Before: before, After: text}
		if err := history.Append(dotdir, rec, limit); err != nil {
			*status = "history write failed: " + err.Error()
		}
	})
	p.SetNoColor(m.noColor)
	m.panels = append(m.panels, p)
	return m
}

func (m Model) noteOutcome(p Panel) {
	te, ok := p.(*textedit.Panel)
	if !ok {
		return
	}
	if strings.HasPrefix(*m.status, "save failed") || strings.HasPrefix(*m.status, "history write failed") {
		return
	}
	if te.Committed() {
		*m.status = "committed " + te.Title()
	} else {
		*m.status = "cancelled " + te.Title()
	}
}

func (m Model) View() string {
	if m.showHelp {
		h := help.NewHelpOverlay()
		ui := state.UIState{Width: m.width}
		if n := len(m.panels); n > 0 {
			if te, ok := m.panels[n-1].(*textedit.Panel); ok {
				ui = te.UIState()
			}
		}
		return h.View(ui)
	}
	if n := len(m.panels); n > 0 {
		views := make([]string, 0, n)
		for _, p := range m.panels {
			views = append(views, p.View(m.width, m.height))
		}
		overlay := lipgloss.JoinVertical(lipgloss.Center, views...)
		footer := m.statusLine()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, overlay) + "\n" + footer
		}
		return overlay + "\n" + footer
	}
	return m.viewList()
}

func (m Model) statusLine() string {
	if n := len(m.panels); n > 0 {
		if te, ok := m.panels[n-1].(*textedit.Panel); ok {
			length, capacity := te.Counter()
			return bar.NewStatusBar().View(te.UIState(), length, capacity)
		}
	}
	return *m.status
}
