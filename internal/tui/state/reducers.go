package state

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	return s
}

// ToggleDisplay switches between Collapsed and Expanded display modes and
// sets a brief notice. Toggling twice restores the original mode.
func ToggleDisplay(s UIState) UIState {
	if s.Display == Collapsed {
		s.Display = Expanded
		s.Notice = "[expanded]"
	} else {
		s.Display = Collapsed
		s.Notice = "[collapsed]"
	}
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// Resize updates width and falls back to the unified diff when the terminal
// is too narrow for two columns. Threshold: 2*MinCol plus 3 chars for the
// separator and gutters.
func Resize(s UIState, width int) UIState {
	s.Width = width
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

// ScrollLeft adjusts horizontal scroll for the left or right diff column.
func ScrollLeft(s UIState, fast bool, leftColumn bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	if leftColumn {
		if s.ScrollHLeft >= delta {
			s.ScrollHLeft -= delta
		} else {
			s.ScrollHLeft = 0
		}
	} else {
		if s.ScrollHRight >= delta {
			s.ScrollHRight -= delta
		} else {
			s.ScrollHRight = 0
		}
	}
	return s
}

// ScrollRight adjusts horizontal scroll for the left or right diff column.
func ScrollRight(s UIState, fast bool, leftColumn bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	if leftColumn {
		s.ScrollHLeft += delta
	} else {
		s.ScrollHRight += delta
	}
	return s
}
