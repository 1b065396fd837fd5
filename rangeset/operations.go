package rangeset

// Union computes the smallest range containing every element of r and s.
// It fails with NotContiguousError if r and s neither overlap nor are
// adjacent, since no single Range could represent the result.
// PostgreSQL equivalent: anyrange + anyrange -> anyrange.
func (r Range[T]) Union(s Range[T]) (Range[T], error) {
	if r.isEmpty && s.isEmpty {
		return Empty(r.elem), nil
	}
	if r.isEmpty {
		return s, nil
	}
	if s.isEmpty {
		return r, nil
	}
	if !r.Overlaps(s) && !r.Adjacent(s) {
		return Range[T]{}, &NotContiguousError[T]{First: r, Second: s}
	}
	return r.span(s)
}

// Merge computes the smallest range covering both r and s, even when they
// are disjoint. Unlike Union, Merge never fails.
// PostgreSQL equivalent: RANGE_MERGE(anyrange, anyrange) -> anyrange.
func (r Range[T]) Merge(s Range[T]) Range[T] {
	if r.isEmpty && s.isEmpty {
		return Empty(r.elem)
	}
	if r.isEmpty {
		return s
	}
	if s.isEmpty {
		return r
	}
	merged, err := r.span(s)
	if err != nil {
		// span only constructs bounds that New already validated on r and
		// s individually, so this is unreachable.
		panic(err)
	}
	return merged
}

// span builds the range from min(lower) to max(upper), used by both Union
// (after the contiguity check) and Merge (unconditionally).
func (r Range[T]) span(s Range[T]) (Range[T], error) {
	lo := r.lower
	if compareBounds(r.elem, s.lower, r.lower) < 0 {
		lo = s.lower
	}
	up := r.upper
	if compareBounds(r.elem, s.upper, r.upper) > 0 {
		up = s.upper
	}
	return New(r.elem, lo.endpoint(), up.endpoint(), LowerInclusive(lo.inclusive), UpperInclusive(up.inclusive))
}

// Intersect computes the range of elements common to both r and s, or the
// empty range if they share none.
// PostgreSQL equivalent: anyrange * anyrange -> anyrange.
func (r Range[T]) Intersect(s Range[T]) Range[T] {
	if r.isEmpty || s.isEmpty || !r.Overlaps(s) {
		return Empty(r.elem)
	}
	lo := r.lower
	if compareBounds(r.elem, s.lower, r.lower) > 0 {
		lo = s.lower
	}
	up := r.upper
	if compareBounds(r.elem, s.upper, r.upper) < 0 {
		up = s.upper
	}
	result, err := New(r.elem, lo.endpoint(), up.endpoint(), LowerInclusive(lo.inclusive), UpperInclusive(up.inclusive))
	if err != nil {
		// lo/up are drawn from two already-valid ranges' bounds; the
		// overlap check above guarantees lo <= up.
		panic(err)
	}
	return result
}

// Difference computes the elements of r that are not in s. It fails with
// DisjointRangesError when s sits strictly inside r, since removing it
// would leave two disjoint fragments that cannot be represented as a
// single Range.
// PostgreSQL equivalent: anyrange - anyrange -> anyrange.
func (r Range[T]) Difference(s Range[T]) (Range[T], error) {
	if r.isEmpty {
		return Empty(r.elem), nil
	}
	if s.isEmpty {
		return r, nil
	}

	cll := compareBounds(r.elem, r.lower, s.lower)
	clu := compareBounds(r.elem, r.lower, s.upper)
	cul := compareBounds(r.elem, r.upper, s.lower)
	cuu := compareBounds(r.elem, r.upper, s.upper)

	switch {
	case cll < 0 && cuu > 0:
		left, err := New(r.elem, r.lower.endpoint(), s.lower.endpoint(),
			LowerInclusive(r.lower.inclusive), UpperInclusive(!s.lower.inclusive))
		if err != nil {
			panic(err)
		}
		right, err := New(r.elem, s.upper.endpoint(), r.upper.endpoint(),
			LowerInclusive(!s.upper.inclusive), UpperInclusive(r.upper.inclusive))
		if err != nil {
			panic(err)
		}
		return Range[T]{}, &DisjointRangesError[T]{Left: left, Right: right}

	case clu > 0 || cul < 0:
		return r, nil

	case cll >= 0 && cuu <= 0:
		return Empty(r.elem), nil

	case cll <= 0 && cul >= 0 && cuu <= 0:
		result, err := New(r.elem, r.lower.endpoint(), s.lower.endpoint(),
			LowerInclusive(r.lower.inclusive), UpperInclusive(!s.lower.inclusive))
		if err != nil {
			panic(err)
		}
		return result, nil

	case cll >= 0 && cuu >= 0 && clu <= 0:
		result, err := New(r.elem, s.upper.endpoint(), r.upper.endpoint(),
			LowerInclusive(!s.upper.inclusive), UpperInclusive(r.upper.inclusive))
		if err != nil {
			panic(err)
		}
		return result, nil

	default:
		// Every combination of {lt,eq,gt}^4 consistent with cll<=0<=... is
		// covered by the cases above; this is unreachable.
		panic("rangeset: unexpected bound comparison in Difference")
	}
}

// Compare defines a strict total order over ranges: empties compare
// greater than every specified range and equal to each other; otherwise
// lower bounds are compared first, upper bounds break ties. Multirange
// normalization (spec §4.3) is defined in terms of this order.
// PostgreSQL equivalent: anyrange < / <= / = / >= / > anyrange.
func (r Range[T]) Compare(s Range[T]) int {
	if r.isEmpty && s.isEmpty {
		return 0
	}
	if r.isEmpty {
		return 1
	}
	if s.isEmpty {
		return -1
	}
	if c := compareBounds(r.elem, r.lower, s.lower); c != 0 {
		return c
	}
	return compareBounds(r.elem, r.upper, s.upper)
}

// Equal reports whether r and s contain exactly the same elements.
// PostgreSQL equivalent: anyrange = anyrange -> boolean.
func (r Range[T]) Equal(s Range[T]) bool {
	return r.Compare(s) == 0
}
