// Package rangeset implements a single possibly-empty interval over an
// ordered element type E, with semantics identical to PostgreSQL's range
// types: canonicalization, the seven topological predicates, the three set
// operations, merge, and a total order.
package rangeset

import (
	"fmt"

	"github.com/munnik/pgrange/element"
)

// Range is a single interval over T: either the canonical empty value, or a
// pair of bounds satisfying the order and canonical-form invariants (spec
// §3 I-1..I-4). The zero Range is not meaningful on its own; use Empty or
// New.
type Range[T any] struct {
	elem    element.Capability[T]
	isEmpty bool
	lower   bound[T]
	upper   bound[T]
}

// Option configures New's inclusivity; New starts from the defaults (lower
// inclusive, upper exclusive) before applying any Option.
type Option func(*options)

type options struct {
	lowerInclusive bool
	upperInclusive bool
}

// LowerInclusive overrides whether the lower endpoint is included.
func LowerInclusive(v bool) Option {
	return func(o *options) { o.lowerInclusive = v }
}

// UpperInclusive overrides whether the upper endpoint is included.
func UpperInclusive(v bool) Option {
	return func(o *options) { o.upperInclusive = v }
}

// Empty returns the canonical empty range over elem (spec §3 I-3).
func Empty[T any](elem element.Capability[T]) Range[T] {
	return Range[T]{elem: elem, isEmpty: true}
}

// New constructs a range from lower to upper, applying LowerInclusive
// (default true) and UpperInclusive (default false). It canonicalizes the
// result, collapsing to Empty when the requested interval contains no
// values, and fails with BoundOrderError when lower genuinely exceeds
// upper.
func New[T any](elem element.Capability[T], lower, upper Endpoint[T], opts ...Option) (Range[T], error) {
	cfg := options{lowerInclusive: true, upperInclusive: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	lo := bound[T]{value: lower.value, unbound: lower.unbound, inclusive: cfg.lowerInclusive, isLower: true}
	up := bound[T]{value: upper.value, unbound: upper.unbound, inclusive: cfg.upperInclusive, isLower: false}

	// The raw (pre-canonicalization) comparison distinguishes a genuine
	// order violation from a same-value crossing that simply collapses to
	// empty: compareBounds only returns "gt" on equal values when the
	// inclusivity combination excludes every point between them.
	if compareBounds(elem, lo, up) > 0 {
		if !lo.unbound && !up.unbound && elem.Compare(lo.value, up.value) == 0 {
			return Empty(elem), nil
		}
		return Range[T]{}, &BoundOrderError[T]{Lower: lower, Upper: upper}
	}

	lo, up = canonicalizeBounds(elem, lo, up)
	if compareBounds(elem, lo, up) > 0 {
		// Canonicalization bumped an exclusive discrete bound past the
		// other side (e.g. (n, n+1) -> [n+1, n+1)): the set of contained
		// values is empty, even though the raw bounds looked ordered.
		return Empty(elem), nil
	}

	return Range[T]{elem: elem, lower: lo, upper: up}, nil
}

// IsEmpty reports whether r is the empty range.
func (r Range[T]) IsEmpty() bool {
	return r.isEmpty
}

// Element returns the capability r was constructed with.
func (r Range[T]) Element() element.Capability[T] {
	return r.elem
}

// LowerUnbound reports whether r's lower bound is unbound. False for the
// empty range.
func (r Range[T]) LowerUnbound() bool {
	return !r.isEmpty && r.lower.unbound
}

// UpperUnbound reports whether r's upper bound is unbound. False for the
// empty range.
func (r Range[T]) UpperUnbound() bool {
	return !r.isEmpty && r.upper.unbound
}

// Lower returns the lower bound value and true, or the zero value and false
// if r is empty or its lower bound is unbound.
func (r Range[T]) Lower() (T, bool) {
	if r.isEmpty || r.lower.unbound {
		var zero T
		return zero, false
	}
	return r.lower.value, true
}

// Upper returns the upper bound value and true, or the zero value and false
// if r is empty or its upper bound is unbound.
func (r Range[T]) Upper() (T, bool) {
	if r.isEmpty || r.upper.unbound {
		var zero T
		return zero, false
	}
	return r.upper.value, true
}

// LowerInclusive reports whether the lower bound is inclusive. Meaningless
// (returns false) for an empty or lower-unbound range.
func (r Range[T]) LowerInclusive() bool {
	return !r.isEmpty && !r.lower.unbound && r.lower.inclusive
}

// UpperInclusive reports whether the upper bound is inclusive. Meaningless
// (returns false) for an empty or upper-unbound range.
func (r Range[T]) UpperInclusive() bool {
	return !r.isEmpty && !r.upper.unbound && r.upper.inclusive
}

func (r Range[T]) String() string {
	if r.isEmpty {
		return "empty"
	}
	lowerDelim := "("
	if r.lower.inclusive {
		lowerDelim = "["
	}
	upperDelim := ")"
	if r.upper.inclusive {
		upperDelim = "]"
	}
	lo := "unbound"
	if !r.lower.unbound {
		lo = fmt.Sprintf("%v", r.lower.value)
	}
	up := "unbound"
	if !r.upper.unbound {
		up = fmt.Sprintf("%v", r.upper.value)
	}
	return fmt.Sprintf("%s%s,%s%s", lowerDelim, lo, up, upperDelim)
}
