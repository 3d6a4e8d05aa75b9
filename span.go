package spanscore

import (
	"cmp"
	"fmt"
	"slices"
)

// Span is a contiguous token range [Start, End) with a type. Spans are
// comparable values; two spans are equal iff all fields match.
type Span struct {
	Start int
	End   int
	Type  string
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("(%d,%d,%s)", s.Start, s.End, s.Type)
}

func compareSpans(a, b Span) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// spanSet sorts spans in place and drops duplicates, giving a canonical
// ordering for set comparison and matrix construction.
func spanSet(spans []Span) []Span {
	slices.SortFunc(spans, compareSpans)
	return slices.Compact(spans)
}
