package rangeset

import "github.com/munnik/pgrange/element"

// bound is the internal triple form (value|unbound, inclusive, isLower)
// from spec §4.2. compareBounds is the single source of truth every
// predicate and operation in this package is built from.
type bound[T any] struct {
	value     T
	unbound   bool
	inclusive bool
	isLower   bool
}

// compareBounds implements the full bound-comparison contract: it treats a
// and b as interchangeable bound triples, regardless of which side of which
// range they originally came from (comparing a range's lower bound against
// another range's upper bound is exactly as well-defined as lower-vs-lower).
func compareBounds[T any](elem element.Capability[T], a, b bound[T]) int {
	if a.unbound && b.unbound {
		if a.isLower == b.isLower {
			return 0
		}
		if a.isLower {
			return -1
		}
		return 1
	}
	if a.unbound {
		if a.isLower {
			return -1
		}
		return 1
	}
	if b.unbound {
		if b.isLower {
			return 1
		}
		return -1
	}

	result := elem.Compare(a.value, b.value)
	if result != 0 {
		return result
	}

	switch {
	case !a.inclusive && !b.inclusive:
		if a.isLower == b.isLower {
			return 0
		}
		if a.isLower {
			return 1
		}
		return -1
	case !a.inclusive:
		if a.isLower {
			return 1
		}
		return -1
	case !b.inclusive:
		if b.isLower {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// canonicalizeBounds applies spec §4.2 "Canonicalization": for a discrete
// element, an exclusive lower bound is bumped to its successor and flipped
// to inclusive; an inclusive upper bound is bumped to its successor and
// flipped to exclusive. Indiscrete elements (Successor reports ok=false)
// pass through unchanged. unbound bounds are never touched.
func canonicalizeBounds[T any](elem element.Capability[T], lo, up bound[T]) (bound[T], bound[T]) {
	if !lo.unbound && !lo.inclusive {
		if next, ok := elem.Successor(lo.value); ok {
			lo.value = next
			lo.inclusive = true
		}
	}
	if !up.unbound && up.inclusive {
		if next, ok := elem.Successor(up.value); ok {
			up.value = next
			up.inclusive = false
		}
	}
	return lo, up
}

func (b bound[T]) endpoint() Endpoint[T] {
	if b.unbound {
		return Unbound[T]()
	}
	return Value(b.value)
}
