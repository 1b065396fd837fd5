// Package multirange implements a sorted, disjoint, non-adjacent sequence
// of non-empty ranges, built on rangeset, with the same predicate and
// operation surface as rangeset plus cross-type forms that accept a bare
// range or element on either side.
package multirange

import (
	"sort"
	"strings"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/rangeset"
)

// Multirange is an ordered, normalized sequence of non-empty ranges (spec
// §3 I-5..I-7). The zero value is not meaningful; use Empty or New.
type Multirange[T any] struct {
	elem   element.Capability[T]
	ranges []rangeset.Range[T]
}

// Empty returns the canonical empty multirange over elem.
func Empty[T any](elem element.Capability[T]) Multirange[T] {
	return Multirange[T]{elem: elem}
}

// New builds the normalized multirange containing exactly the elements of
// every range in rs: ranges are sorted, empties are dropped, and
// overlapping or adjacent ranges are merged, establishing I-5/I-6. This is
// the only path that produces a Multirange from raw ranges; every other
// operation in this package is defined in terms of it.
func New[T any](elem element.Capability[T], rs ...rangeset.Range[T]) Multirange[T] {
	sorted := make([]rangeset.Range[T], len(rs))
	copy(sorted, rs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	var out []rangeset.Range[T]
	for _, r := range sorted {
		if r.IsEmpty() {
			continue
		}
		if len(out) == 0 {
			out = append(out, r)
			continue
		}
		last := out[len(out)-1]
		if last.Overlaps(r) || last.Adjacent(r) {
			// Overlapping or adjacent ranges are always contiguous, so
			// Union cannot fail here.
			out[len(out)-1] = last.MustUnion(r)
			continue
		}
		out = append(out, r)
	}
	return Multirange[T]{elem: elem, ranges: out}
}

// IsEmpty reports whether m has no ranges.
func (m Multirange[T]) IsEmpty() bool {
	return len(m.ranges) == 0
}

// Len returns the number of disjoint ranges in m.
func (m Multirange[T]) Len() int {
	return len(m.ranges)
}

// Ranges returns a copy of m's constituent ranges, in increasing order.
func (m Multirange[T]) Ranges() []rangeset.Range[T] {
	out := make([]rangeset.Range[T], len(m.ranges))
	copy(out, m.ranges)
	return out
}

// Element returns the capability m was constructed with.
func (m Multirange[T]) Element() element.Capability[T] {
	return m.elem
}

func (m Multirange[T]) String() string {
	if m.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(m.ranges))
	for i, r := range m.ranges {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
