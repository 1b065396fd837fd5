package rangeset

import "github.com/munnik/pgrange/element"

// MustNew is New, but panics instead of returning an error, mirroring
// regexp.MustCompile: for call sites that treat a bad bound order as a
// programmer error rather than a recoverable condition.
func MustNew[T any](elem element.Capability[T], lower, upper Endpoint[T], opts ...Option) Range[T] {
	r, err := New(elem, lower, upper, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// MustUnion is Union, but panics on NotContiguousError.
func (r Range[T]) MustUnion(s Range[T]) Range[T] {
	result, err := r.Union(s)
	if err != nil {
		panic(err)
	}
	return result
}

// MustDifference is Difference, but panics on DisjointRangesError.
func (r Range[T]) MustDifference(s Range[T]) Range[T] {
	result, err := r.Difference(s)
	if err != nil {
		panic(err)
	}
	return result
}
