package state

// DisplayMode selects how an edit panel presents its text field.
type DisplayMode int

const (
	// Collapsed renders a single-line field sized to its content.
	Collapsed DisplayMode = iota
	// Expanded renders a multi-line field in a fixed area.
	Expanded
)

// DiffMode controls how the seed-vs-current diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// UIState holds cross-widget UI state used by the status bar, diff preview,
// and edit panels.
type UIState struct {
	// Mode & View
	Display DisplayMode
	Wrap    bool
	View    DiffMode

	// Layout & scrolling
	Width        int
	MinCol       int
	ScrollHLeft  int
	ScrollHRight int

	// Notices and ephemeral messages
	Notice string
}
