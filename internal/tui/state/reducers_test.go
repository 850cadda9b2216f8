package state

import "testing"

func TestToggleWrap(t *testing.T) {
	s := UIState{Wrap: false}
	s = ToggleWrap(s)
	if !s.Wrap {
		t.Fatalf("expected Wrap to be true")
	}
}

func TestToggleDisplaySetsNotice(t *testing.T) {
	s := UIState{Display: Collapsed}
	s = ToggleDisplay(s)
	if s.Display != Expanded || s.Notice == "" {
		t.Fatalf("expected Expanded mode and notice")
	}
	s = ToggleDisplay(s)
	if s.Display != Collapsed || s.Notice == "" {
		t.Fatalf("expected Collapsed mode and notice")
	}
}

func TestToggleDisplayDoubleInvocationRestores(t *testing.T) {
	for _, start := range []DisplayMode{Collapsed, Expanded} {
		s := UIState{Display: start}
		s = ToggleDisplay(ToggleDisplay(s))
		if s.Display != start {
			t.Fatalf("double toggle did not restore mode %v", start)
		}
	}
}

func TestToggleView(t *testing.T) {
	s := UIState{View: Unified}
	s = ToggleView(s)
	if s.View != SideBySide {
		t.Fatalf("expected SideBySide view")
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{View: SideBySide, MinCol: 20}
	s = Resize(s, 30) // threshold = 2*20+3 = 43; 30 < 43 => unified
	if s.View != Unified {
		t.Fatalf("expected Unified after resize fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
}

func TestScrolls(t *testing.T) {
	s := UIState{}
	s = ScrollRight(s, true, true)
	if s.ScrollHLeft == 0 {
		t.Fatalf("expected left scroll to increase")
	}
	s = ScrollLeft(s, true, true)
	if s.ScrollHLeft != 0 {
		t.Fatalf("expected left scroll to return to 0")
	}
}
