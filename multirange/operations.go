package multirange

import (
	"errors"

	"github.com/munnik/pgrange/rangeset"
)

// Union returns the multirange containing every element of m or other.
// Normalization (New) does all the work of merging overlapping and
// adjacent segments.
// PostgreSQL equivalent: anymultirange + anymultirange -> anymultirange.
func (m Multirange[T]) Union(other Multirange[T]) Multirange[T] {
	combined := make([]rangeset.Range[T], 0, len(m.ranges)+len(other.ranges))
	combined = append(combined, m.ranges...)
	combined = append(combined, other.ranges...)
	return New(m.elem, combined...)
}

// Intersect returns the multirange containing every element common to
// both m and other.
// PostgreSQL equivalent: anymultirange * anymultirange -> anymultirange.
func (m Multirange[T]) Intersect(other Multirange[T]) Multirange[T] {
	var parts []rangeset.Range[T]
	for _, a := range m.ranges {
		for _, b := range other.ranges {
			if i := a.Intersect(b); !i.IsEmpty() {
				parts = append(parts, i)
			}
		}
	}
	return New(m.elem, parts...)
}

// Difference returns the multirange containing every element of m that is
// not in other. Where a range of other sits strictly inside a range of m,
// rangeset.Range.Difference reports DisjointRangesError; both resulting
// fragments are kept rather than the operation failing, since at the
// multirange level splitting one segment into two is always representable.
// PostgreSQL equivalent: anymultirange - anymultirange -> anymultirange.
func (m Multirange[T]) Difference(other Multirange[T]) Multirange[T] {
	current := append([]rangeset.Range[T]{}, m.ranges...)
	for _, r := range other.ranges {
		var next []rangeset.Range[T]
		for _, x := range current {
			diff, err := x.Difference(r)
			if err == nil {
				if !diff.IsEmpty() {
					next = append(next, diff)
				}
				continue
			}
			var disjoint *rangeset.DisjointRangesError[T]
			if errors.As(err, &disjoint) {
				next = append(next, disjoint.Left, disjoint.Right)
				continue
			}
			// x and r are both non-empty ranges sharing an element
			// domain; Difference only ever fails with DisjointRangesError.
			panic(err)
		}
		current = next
	}
	return New(m.elem, current...)
}

// Merge returns the smallest range covering every element of m, i.e. the
// merge of its first and last constituent ranges. An empty multirange
// merges to the empty range.
// PostgreSQL equivalent: RANGE_MERGE applied across a multirange's ranges.
func (m Multirange[T]) Merge() rangeset.Range[T] {
	if m.IsEmpty() {
		return rangeset.Empty(m.elem)
	}
	first := m.ranges[0]
	last := m.ranges[len(m.ranges)-1]
	return first.Merge(last)
}
