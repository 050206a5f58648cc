// Package overlap provides a read-only interval index for half-open genomic
// intervals. An index is built once per chromosome and dataset and is safe to
// share across concurrent per-chromosome classification tasks.
package overlap

import (
	"fmt"

	"github.com/biogo/store/interval"
	"github.com/carbocation/pfx"
)

// Span is a half-open interval [Start, End).
type Span struct {
	Start int
	End   int
}

// span adapts Span to the interval tree entry interface.
type span struct {
	Span
	id uintptr
}

// Overlap uses the half-open rule: [a,b) and [c,d) overlap iff a < d && c < b.
func (s span) Overlap(b interval.IntRange) bool {
	return s.Start < b.End && b.Start < s.End
}

func (s span) ID() uintptr { return s.id }

func (s span) Range() interval.IntRange {
	return interval.IntRange{Start: s.Start, End: s.End}
}

// Index answers overlap queries against a fixed set of intervals.
type Index struct {
	tree interval.IntTree
	n    int
}

// NewIndex builds an index over the given spans. Spans need not be sorted.
// A span with start >= end is rejected.
func NewIndex(spans []Span) (*Index, error) {
	idx := &Index{n: len(spans)}

	for i, s := range spans {
		if s.Start >= s.End {
			return nil, fmt.Errorf("interval %d: start %d >= end %d", i, s.Start, s.End)
		}
		if err := idx.tree.Insert(span{Span: s, id: uintptr(i)}, true); err != nil {
			return nil, pfx.Err(err)
		}
	}
	idx.tree.AdjustRanges()

	return idx, nil
}

// Len returns the number of indexed intervals.
func (idx *Index) Len() int { return idx.n }

// AnyOverlap reports whether any indexed interval shares at least one base
// with [start, end).
func (idx *Index) AnyOverlap(start, end int) bool {
	if idx == nil || start >= end {
		return false
	}

	found := false
	idx.tree.DoMatching(func(interval.IntInterface) (done bool) {
		found = true
		return true
	}, span{Span: Span{Start: start, End: end}})

	return found
}

// Count returns the number of indexed intervals overlapping [start, end).
func (idx *Index) Count(start, end int) int {
	if idx == nil || start >= end {
		return 0
	}

	n := 0
	idx.tree.DoMatching(func(interval.IntInterface) (done bool) {
		n++
		return false
	}, span{Span: Span{Start: start, End: end}})

	return n
}
