package rangeset

import (
	"errors"
	"iter"
)

// ErrIterationNotSupported is returned by Ascend when r cannot be walked
// element by element: either its element type is indiscrete (no successor
// operation) or its lower bound is unbound (there is no starting point).
var ErrIterationNotSupported = errors.New("rangeset: iteration requires a discrete, lower-bounded range")

// Ascend returns a sequence over every element of r in increasing order,
// starting at its (canonical, inclusive) lower bound and stepping by
// successor. The sequence is finite when r is upper-bounded and infinite
// when it is unbounded above; callers driving an unbounded sequence control
// their own stopping condition via the iterator's early-return.
func (r Range[T]) Ascend() (iter.Seq[T], error) {
	if r.isEmpty {
		return func(func(T) bool) {}, nil
	}
	if r.lower.unbound {
		return nil, ErrIterationNotSupported
	}
	if _, ok := r.elem.Successor(r.lower.value); !ok {
		return nil, ErrIterationNotSupported
	}

	return func(yield func(T) bool) {
		cur := r.lower.value
		for r.ContainsElement(cur) {
			if !yield(cur) {
				return
			}
			next, ok := r.elem.Successor(cur)
			if !ok {
				return
			}
			cur = next
		}
	}, nil
}
