package multirange

import "github.com/munnik/pgrange/rangeset"

func (m Multirange[T]) first() (rangeset.Range[T], bool) {
	if len(m.ranges) == 0 {
		return rangeset.Range[T]{}, false
	}
	return m.ranges[0], true
}

func (m Multirange[T]) last() (rangeset.Range[T], bool) {
	if len(m.ranges) == 0 {
		return rangeset.Range[T]{}, false
	}
	return m.ranges[len(m.ranges)-1], true
}

// ContainsRange reports whether every element of r is in m.
// PostgreSQL equivalent: anymultirange @> anyrange -> boolean.
func (m Multirange[T]) ContainsRange(r rangeset.Range[T]) bool {
	if r.IsEmpty() {
		return true
	}
	for _, part := range m.ranges {
		if part.Contains(r) {
			return true
		}
	}
	return false
}

// Contains reports whether every range in other is contained in at least
// one range of m. PostgreSQL equivalent: anymultirange @> anymultirange.
func (m Multirange[T]) Contains(other Multirange[T]) bool {
	for _, r := range other.ranges {
		if !m.ContainsRange(r) {
			return false
		}
	}
	return true
}

// ContainsElement reports whether e is a member of m.
// PostgreSQL equivalent: anymultirange @> anyelement -> boolean.
func (m Multirange[T]) ContainsElement(e T) bool {
	singleton, err := rangeset.New(m.elem, rangeset.Value(e), rangeset.Value(e), rangeset.UpperInclusive(true))
	if err != nil {
		return false
	}
	return m.ContainsRange(singleton)
}

// OverlapsRange reports whether m and r share any elements.
// PostgreSQL equivalent: anymultirange && anyrange -> boolean.
func (m Multirange[T]) OverlapsRange(r rangeset.Range[T]) bool {
	for _, part := range m.ranges {
		if part.Overlaps(r) {
			return true
		}
	}
	return false
}

// Overlaps reports whether some range of m overlaps some range of other.
// PostgreSQL equivalent: anymultirange && anymultirange -> boolean.
func (m Multirange[T]) Overlaps(other Multirange[T]) bool {
	for _, r := range other.ranges {
		if m.OverlapsRange(r) {
			return true
		}
	}
	return false
}

// LeftRange reports whether m lies strictly to the left of r.
// PostgreSQL equivalent: anymultirange << anyrange -> boolean.
func (m Multirange[T]) LeftRange(r rangeset.Range[T]) bool {
	last, ok := m.last()
	if !ok {
		return false
	}
	return last.Left(r)
}

// Left reports whether m lies strictly to the left of other: m's last
// range is strictly left of other's first range.
// PostgreSQL equivalent: anymultirange << anymultirange -> boolean.
func (m Multirange[T]) Left(other Multirange[T]) bool {
	first, ok := other.first()
	if !ok {
		return false
	}
	return m.LeftRange(first)
}

// RightRange reports whether m lies strictly to the right of r.
// PostgreSQL equivalent: anymultirange >> anyrange -> boolean.
func (m Multirange[T]) RightRange(r rangeset.Range[T]) bool {
	first, ok := m.first()
	if !ok {
		return false
	}
	return r.Left(first)
}

// Right reports whether m lies strictly to the right of other.
// PostgreSQL equivalent: anymultirange >> anymultirange -> boolean.
func (m Multirange[T]) Right(other Multirange[T]) bool {
	return other.Left(m)
}

// NoExtendRightRange reports whether m does not extend to the right of r.
// PostgreSQL equivalent: anymultirange &< anyrange -> boolean.
func (m Multirange[T]) NoExtendRightRange(r rangeset.Range[T]) bool {
	last, ok := m.last()
	if !ok {
		return false
	}
	return last.NoExtendRight(r)
}

// NoExtendRight reports whether m's last range does not extend to the
// right of other's last range.
// PostgreSQL equivalent: anymultirange &< anymultirange -> boolean.
func (m Multirange[T]) NoExtendRight(other Multirange[T]) bool {
	last, ok := other.last()
	if !ok {
		return false
	}
	return m.NoExtendRightRange(last)
}

// NoExtendLeftRange reports whether m does not extend to the left of r.
// PostgreSQL equivalent: anymultirange &> anyrange -> boolean.
func (m Multirange[T]) NoExtendLeftRange(r rangeset.Range[T]) bool {
	first, ok := m.first()
	if !ok {
		return false
	}
	return first.NoExtendLeft(r)
}

// NoExtendLeft reports whether m's first range does not extend to the left
// of other's first range.
// PostgreSQL equivalent: anymultirange &> anymultirange -> boolean.
func (m Multirange[T]) NoExtendLeft(other Multirange[T]) bool {
	first, ok := other.first()
	if !ok {
		return false
	}
	return m.NoExtendLeftRange(first)
}

// AdjacentRange reports whether m and r share a boundary, tested both
// ways (m's first range against r, and m's last range against r).
// PostgreSQL equivalent: anymultirange -|- anyrange -> boolean.
func (m Multirange[T]) AdjacentRange(r rangeset.Range[T]) bool {
	if last, ok := m.last(); ok && last.Adjacent(r) {
		return true
	}
	if first, ok := m.first(); ok && r.Adjacent(first) {
		return true
	}
	return false
}

// Adjacent reports whether m and other share a boundary point: m's first
// range against other's last, or m's last range against other's first.
// Interior adjacency between normalized multiranges is impossible by I-6,
// so only the two exterior pairs need checking.
// PostgreSQL equivalent: anymultirange -|- anymultirange -> boolean.
func (m Multirange[T]) Adjacent(other Multirange[T]) bool {
	mFirst, mOK := m.first()
	mLast, _ := m.last()
	oFirst, oOK := other.first()
	oLast, _ := other.last()
	if mOK && oOK && mLast.Adjacent(oFirst) {
		return true
	}
	if mOK && oOK && oLast.Adjacent(mFirst) {
		return true
	}
	return false
}

// RangeContainsMultirange reports whether every range in m is contained in
// r, i.e. r (lifted to a single-range multirange) contains m.
// PostgreSQL equivalent: anyrange @> anymultirange -> boolean.
func RangeContainsMultirange[T any](r rangeset.Range[T], m Multirange[T]) bool {
	return New(m.elem, r).Contains(m)
}

// RangeOverlapsMultirange reports whether r overlaps any range of m.
// PostgreSQL equivalent: anyrange && anymultirange -> boolean.
func RangeOverlapsMultirange[T any](r rangeset.Range[T], m Multirange[T]) bool {
	return m.OverlapsRange(r)
}

// RangeLeftMultirange reports whether r lies strictly to the left of m.
// PostgreSQL equivalent: anyrange << anymultirange -> boolean.
func RangeLeftMultirange[T any](r rangeset.Range[T], m Multirange[T]) bool {
	return m.RightRange(r)
}

// RangeRightMultirange reports whether r lies strictly to the right of m.
// PostgreSQL equivalent: anyrange >> anymultirange -> boolean.
func RangeRightMultirange[T any](r rangeset.Range[T], m Multirange[T]) bool {
	return m.LeftRange(r)
}

// RangeAdjacentMultirange reports whether r and m share a boundary.
// PostgreSQL equivalent: anyrange -|- anymultirange -> boolean.
func RangeAdjacentMultirange[T any](r rangeset.Range[T], m Multirange[T]) bool {
	return m.AdjacentRange(r)
}
