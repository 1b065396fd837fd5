package element

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// integerCapability is the discrete capability for any built-in integer
// type: the total order is the machine order and the successor is n+1.
type integerCapability[T constraints.Integer] struct{}

// Integer returns the discrete element capability for integer type T.
// PostgreSQL equivalent: int4range / int8range.
func Integer[T constraints.Integer]() Capability[T] {
	return integerCapability[T]{}
}

func (integerCapability[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

func (integerCapability[T]) Successor(a T) (T, bool) {
	return a + 1, true
}
