package util

import (
	"testing"

	"editpad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestEditedAndMultilineFlags(t *testing.T) {
	tags := ComputeTags("hello", "hello\nworld", 512, 0)
	if _, ok := findKind(tags, state.EDITED); !ok {
		t.Fatalf("expected EDITED tag present")
	}
	if _, ok := findKind(tags, state.MULTILINE); !ok {
		t.Fatalf("expected MULTILINE tag present")
	}

	tags = ComputeTags("same", "same", 512, 0)
	if _, ok := findKind(tags, state.EDITED); ok {
		t.Fatalf("did not expect EDITED when text is unchanged")
	}
}

func TestGrownOmittedWhenZero(t *testing.T) {
	tags := ComputeTags("a", "ab", 512, 0)
	if _, ok := findKind(tags, state.GROWN); ok {
		t.Fatalf("did not expect GROWN with zero growth steps")
	}
	tags = ComputeTags("a", "ab", 1024, 2)
	idx, ok := findKind(tags, state.GROWN)
	if !ok || tags[idx].Value != 2 {
		t.Fatalf("expected GROWN with value 2")
	}
}

func TestCountersAlwaysPresent(t *testing.T) {
	cur := "0123456789"
	tags := ComputeTags("", cur, 522, 1)
	if idx, ok := findKind(tags, state.BUF_LEN); !ok || tags[idx].Value != len(cur) {
		t.Fatalf("expected BUF_LEN with correct value")
	}
	if idx, ok := findKind(tags, state.BUF_CAP); !ok || tags[idx].Value != 522 {
		t.Fatalf("expected BUF_CAP with correct value")
	}
}

func TestStableOrder(t *testing.T) {
	tags := ComputeTags("a", "b\nc", 1024, 1)
	order := []state.TagKind{state.EDITED, state.MULTILINE, state.GROWN, state.BUF_LEN, state.BUF_CAP}
	pos := map[state.TagKind]int{}
	for i, tg := range tags {
		pos[tg.Kind] = i
	}
	prev := -1
	for _, k := range order {
		if idx, ok := pos[k]; ok {
			if idx < prev {
				t.Fatalf("tag %v appears before previous; order unstable", k)
			}
			prev = idx
		}
	}
}

func TestTextHelpers(t *testing.T) {
	if FirstLine("ab\ncd") != "ab" {
		t.Fatalf("FirstLine failed")
	}
	if FirstLine("abcd") != "abcd" {
		t.Fatalf("FirstLine on single line failed")
	}
	if Ellipsize("hello", 3) != "he…" {
		t.Fatalf("Ellipsize cut wrong: %q", Ellipsize("hello", 3))
	}
	if Ellipsize("hi", 10) != "hi" {
		t.Fatalf("Ellipsize should not cut short strings")
	}
}
