package state

// TagKind enumerates the status tags shown for an edit buffer.
type TagKind int

const (
	// Stable ordering for display: Edited, Multiline, Grown, Len, Cap
	EDITED TagKind = iota
	MULTILINE
	GROWN
	BUF_LEN
	BUF_CAP
)

// Tag represents a single status chip. Value is used for numeric counters
// (growth steps, lengths, capacity). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
