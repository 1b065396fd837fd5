package multirange

import (
	"testing"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/rangeset"
)

func ints() element.Capability[int] {
	return element.Integer[int]()
}

func r(t *testing.T, lower, upper int) rangeset.Range[int] {
	t.Helper()
	rr, err := rangeset.New(ints(), rangeset.Value(lower), rangeset.Value(upper))
	if err != nil {
		t.Fatalf("rangeset.New(%d,%d): %v", lower, upper, err)
	}
	return rr
}

func TestNewMergesOverlappingAndAdjacent(t *testing.T) {
	m := New(ints(), r(t, 1, 10), r(t, 5, 15), r(t, 20, 30))
	if m.Len() != 2 {
		t.Fatalf("expected 2 segments, got %d: %s", m.Len(), m)
	}
	ranges := m.Ranges()
	lo0, _ := ranges[0].Lower()
	up0, _ := ranges[0].Upper()
	lo1, _ := ranges[1].Lower()
	up1, _ := ranges[1].Upper()
	if lo0 != 1 || up0 != 15 || lo1 != 20 || up1 != 30 {
		t.Fatalf("expected [1,15) and [20,30), got %s", m)
	}
}

func TestNewDropsEmptyRanges(t *testing.T) {
	empty := rangeset.Empty(ints())
	m := New(ints(), r(t, 1, 5), empty)
	if m.Len() != 1 {
		t.Fatalf("expected empty range to be dropped, got %s", m)
	}
}

func TestEmptyMultirangeIsCanonical(t *testing.T) {
	m := Empty(ints())
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatalf("expected canonical empty multirange")
	}
	if New(ints()).Len() != 0 {
		t.Fatalf("expected New with no ranges to be empty")
	}
}

func TestAdjacentAcrossRangeAndMultirange(t *testing.T) {
	m := New(ints(), r(t, 1, 10))
	if !m.AdjacentRange(r(t, 10, 20)) {
		t.Fatalf("expected [1,10) multirange to be adjacent to [10,20)")
	}
}

func TestDifferenceSplitsSegment(t *testing.T) {
	m := New(ints(), r(t, 5, 20))
	cut := New(ints(), r(t, 10, 15))
	diff := m.Difference(cut)
	if diff.Len() != 2 {
		t.Fatalf("expected difference to split into two segments, got %s", diff)
	}
	ranges := diff.Ranges()
	lo0, _ := ranges[0].Lower()
	up0, _ := ranges[0].Upper()
	lo1, _ := ranges[1].Lower()
	up1, _ := ranges[1].Upper()
	if lo0 != 5 || up0 != 10 || lo1 != 15 || up1 != 20 {
		t.Fatalf("expected [5,10) and [15,20), got %s", diff)
	}
}

func TestContainsRangeAndElement(t *testing.T) {
	m := New(ints(), r(t, 1, 10), r(t, 20, 30))
	if !m.ContainsRange(r(t, 2, 5)) {
		t.Fatalf("expected containment of a sub-range within a single segment")
	}
	if m.ContainsRange(r(t, 5, 25)) {
		t.Fatalf("did not expect containment of a range spanning the gap")
	}
	if !m.ContainsElement(25) {
		t.Fatalf("expected 25 to be a member")
	}
	if m.ContainsElement(15) {
		t.Fatalf("did not expect 15 (in the gap) to be a member")
	}
}

func TestUnionNormalizes(t *testing.T) {
	a := New(ints(), r(t, 1, 10))
	b := New(ints(), r(t, 5, 20))
	u := a.Union(b)
	if u.Len() != 1 {
		t.Fatalf("expected union to merge into one segment, got %s", u)
	}
}

func TestIntersectAcrossSegments(t *testing.T) {
	a := New(ints(), r(t, 0, 10), r(t, 20, 30))
	b := New(ints(), r(t, 5, 25))
	i := a.Intersect(b)
	if i.Len() != 2 {
		t.Fatalf("expected two intersecting fragments, got %s", i)
	}
}

func TestMergeIsSmallestCover(t *testing.T) {
	m := New(ints(), r(t, 1, 10), r(t, 20, 30))
	merged := m.Merge()
	lo, _ := merged.Lower()
	up, _ := merged.Upper()
	if lo != 1 || up != 30 {
		t.Fatalf("expected [1,30), got %s", merged)
	}
	if !Empty(ints()).Merge().IsEmpty() {
		t.Fatalf("expected empty multirange to merge to empty range")
	}
}

func TestRangeSideCrossTypeHelpers(t *testing.T) {
	m := New(ints(), r(t, 1, 10), r(t, 20, 30))
	if !RangeOverlapsMultirange(r(t, 5, 25), m) {
		t.Fatalf("expected [5,25) to overlap m")
	}
	if !RangeContainsMultirange(r(t, 0, 40), m) {
		t.Fatalf("expected [0,40) to contain m")
	}
	if !RangeLeftMultirange(r(t, -10, 0), m) {
		t.Fatalf("expected [-10,0) to be left of m")
	}
}
