package rangeset

import "testing"

// FuzzCanonicalFormIsStable checks P2 from spec §8: for discrete ranges,
// lower_inclusive = true and upper_inclusive = false unless the range is
// empty or a bound is unbound.
func FuzzCanonicalFormIsStable(f *testing.F) {
	f.Add(1, 10, true, false)
	f.Add(5, 5, true, true)
	f.Add(-3, 3, false, true)
	f.Fuzz(func(t *testing.T, lower, upper int, lowerIncl, upperIncl bool) {
		r, err := New(ints(), Value(lower), Value(upper), LowerInclusive(lowerIncl), UpperInclusive(upperIncl))
		if err != nil {
			return
		}
		if r.IsEmpty() {
			return
		}
		if !r.LowerInclusive() || r.UpperInclusive() {
			t.Fatalf("canonical form violated for [%d,%d) incl=(%v,%v): %s", lower, upper, lowerIncl, upperIncl, r)
		}
	})
}

// FuzzCompareIsATotalOrder checks part of P6: Compare is reflexive and
// antisymmetric across random pairs of ranges. Transitivity is not checked.
func FuzzCompareIsATotalOrder(f *testing.F) {
	f.Add(1, 10, 2, 9)
	f.Fuzz(func(t *testing.T, l1, u1, l2, u2 int) {
		r1, err1 := New(ints(), Value(l1), Value(u1))
		r2, err2 := New(ints(), Value(l2), Value(u2))
		if err1 != nil || err2 != nil {
			return
		}
		c12 := r1.Compare(r2)
		c21 := r2.Compare(r1)
		if (c12 > 0) != (c21 < 0) || (c12 < 0) != (c21 > 0) || (c12 == 0) != (c21 == 0) {
			t.Fatalf("Compare not antisymmetric for %s vs %s: %d vs %d", r1, r2, c12, c21)
		}
		if r1.Compare(r1) != 0 {
			t.Fatalf("Compare not reflexive for %s", r1)
		}
	})
}

// FuzzIntersectionIsCommutativeAndIdempotent checks part of P5.
func FuzzIntersectionIsCommutativeAndIdempotent(f *testing.F) {
	f.Add(1, 10, 5, 20)
	f.Fuzz(func(t *testing.T, l1, u1, l2, u2 int) {
		r1, err1 := New(ints(), Value(l1), Value(u1))
		r2, err2 := New(ints(), Value(l2), Value(u2))
		if err1 != nil || err2 != nil {
			return
		}
		if !r1.Intersect(r2).Equal(r2.Intersect(r1)) {
			t.Fatalf("intersection not commutative for %s and %s", r1, r2)
		}
		if !r1.Intersect(r1).Equal(r1) {
			t.Fatalf("intersection not idempotent for %s", r1)
		}
	})
}
