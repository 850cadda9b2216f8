// Package textbuf implements the growable, zero-terminated byte buffer that
// backs text-edit panels. Growth is fixed-increment rather than doubling:
// panels hold short interactive text, so bounded, predictable steps beat
// amortized doubling here.
package textbuf

import "strings"

const (
	// GrowIncrement is the fixed number of bytes added per growth step.
	GrowIncrement = 512
	// LowWater is the spare-capacity threshold. When an edit leaves fewer
	// than LowWater spare bytes, the buffer grows by GrowIncrement.
	LowWater = 10
)

// Buffer owns a mutable byte sequence holding a logical string plus unused
// trailing capacity. The byte at the logical length is always zero, and
// capacity is always at least length+1.
type Buffer struct {
	data  []byte
	n     int // logical length in bytes
	grows int // growth steps taken since construction
}

// New copies seed into a buffer with GrowIncrement bytes of headroom.
// A seed containing an embedded NUL is truncated at the first NUL byte.
func New(seed string) *Buffer {
	if i := strings.IndexByte(seed, 0); i >= 0 {
		seed = seed[:i]
	}
	b := &Buffer{data: make([]byte, len(seed)+GrowIncrement), n: len(seed)}
	copy(b.data, seed)
	return b
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int { return b.n }

// Cap returns the total storage size in bytes, terminator included.
func (b *Buffer) Cap() int { return len(b.data) }

// Spare returns the unused trailing capacity, terminator included.
func (b *Buffer) Spare() int { return len(b.data) - b.n }

// Grows returns the number of growth steps taken since construction.
func (b *Buffer) Grows() int { return b.grows }

// String returns the logical content.
func (b *Buffer) String() string { return string(b.data[:b.n]) }

// Grow extends storage by one GrowIncrement, preserving content and the
// terminating zero byte.
func (b *Buffer) Grow() {
	grown := make([]byte, len(b.data)+GrowIncrement)
	copy(grown, b.data[:b.n])
	b.data = grown
	b.grows++
}

// ensure grows in increments until the buffer can hold n content bytes plus
// the terminator. Used before an insert larger than current spare capacity.
func (b *Buffer) ensure(n int) {
	for len(b.data) < n+1 {
		b.Grow()
	}
}

// InsertAt inserts s at byte offset off, clamped to [0, Len]. Content on
// either side is preserved and the terminator re-established. If the edit
// leaves spare capacity below LowWater, the buffer grows.
func (b *Buffer) InsertAt(off int, s string) {
	if s == "" {
		return
	}
	if off < 0 {
		off = 0
	}
	if off > b.n {
		off = b.n
	}
	b.ensure(b.n + len(s))
	copy(b.data[off+len(s):], b.data[off:b.n])
	copy(b.data[off:], s)
	b.n += len(s)
	b.data[b.n] = 0
	if b.Spare() < LowWater {
		b.Grow()
	}
}

// DeleteRange removes bytes in [from, to), clamped to the logical content,
// and re-terminates.
func (b *Buffer) DeleteRange(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > b.n {
		to = b.n
	}
	if from >= to {
		return
	}
	copy(b.data[from:], b.data[to:b.n])
	b.n -= to - from
	b.data[b.n] = 0
}
