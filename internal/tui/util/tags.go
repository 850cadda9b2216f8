package util

import (
	"strings"

	"editpad/internal/tui/state"
)

// ComputeTags calculates the status tags for an edit buffer given the seed
// (original) text, the current text, the storage capacity, and the number of
// growth steps taken so far.
//
// The returned slice preserves a stable order:
//   Edited, Multiline, Grown, Len, Cap
//
// Rules:
// - Edited means the current text differs from the seed.
// - Multiline means the current text contains at least one newline.
// - Grown carries the growth-step count and is omitted when zero.
// - Len and Cap are always included.
func ComputeTags(seed, current string, capacity, grows int) []state.Tag {
	tags := make([]state.Tag, 0, 5)

	if current != seed {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}
	if strings.Contains(current, "\n") {
		tags = append(tags, state.Tag{Kind: state.MULTILINE})
	}
	if grows > 0 {
		tags = append(tags, state.Tag{Kind: state.GROWN, Value: grows})
	}
	tags = append(tags, state.Tag{Kind: state.BUF_LEN, Value: len(current)})
	tags = append(tags, state.Tag{Kind: state.BUF_CAP, Value: capacity})

	return tags
}

// RuneLen returns the length of s in runes (Unicode code points).
func RuneLen(s string) int {
	return len([]rune(s))
}

// FirstLine returns s up to (not including) its first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Ellipsize cuts s to at most limit runes, appending an ellipsis when cut.
func Ellipsize(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
