package rangeset

import "fmt"

// BoundOrderError reports that a requested lower bound exceeds the
// requested upper bound (spec §4.2 New, case "b = gt").
type BoundOrderError[T any] struct {
	Lower, Upper Endpoint[T]
}

func (e *BoundOrderError[T]) Error() string {
	return fmt.Sprintf("rangeset: lower bound %s exceeds upper bound %s", e.Lower, e.Upper)
}

// NotContiguousError reports that Union was asked to join two ranges that
// neither overlap nor are adjacent, so no single range can represent the
// result (spec §4.2 union).
type NotContiguousError[T any] struct {
	First, Second Range[T]
}

func (e *NotContiguousError[T]) Error() string {
	return fmt.Sprintf("rangeset: %s and %s are not contiguous, union would not be a single range", e.First, e.Second)
}

// DisjointRangesError reports that Difference was asked to remove a range
// that sits strictly inside the first operand, leaving two disjoint
// fragments that cannot be represented as one Range (spec §4.2 difference,
// case 1). Left and Right are the two fragments that would have resulted.
type DisjointRangesError[T any] struct {
	Left, Right Range[T]
}

func (e *DisjointRangesError[T]) Error() string {
	return fmt.Sprintf("rangeset: difference would produce disjoint fragments %s and %s", e.Left, e.Right)
}
