// Package rangesql renders PostgreSQL range/multirange operators and
// functions as plain SQL expression strings. It has no runtime behavior of
// its own: every helper is a pure string builder over caller-supplied
// sub-expressions, meant to be composed into a larger query a caller builds
// and executes however it already does (database/sql, pgx, a query builder).
package rangesql

import (
	"fmt"
	"strings"
)

// Contains renders a @> b.
func Contains(a, b string) string { return binary(a, "@>", b) }

// ContainedBy renders a <@ b.
func ContainedBy(a, b string) string { return binary(a, "<@", b) }

// Overlaps renders a && b.
func Overlaps(a, b string) string { return binary(a, "&&", b) }

// StrictlyLeft renders a << b.
func StrictlyLeft(a, b string) string { return binary(a, "<<", b) }

// StrictlyRight renders a >> b.
func StrictlyRight(a, b string) string { return binary(a, ">>", b) }

// NotExtendRight renders a &< b.
func NotExtendRight(a, b string) string { return binary(a, "&<", b) }

// NotExtendLeft renders a &> b.
func NotExtendLeft(a, b string) string { return binary(a, "&>", b) }

// Adjacent renders a -|- b.
func Adjacent(a, b string) string { return binary(a, "-|-", b) }

// Union renders a + b.
func Union(a, b string) string { return binary(a, "+", b) }

// Intersection renders a * b.
func Intersection(a, b string) string { return binary(a, "*", b) }

// Difference renders a - b.
func Difference(a, b string) string { return binary(a, "-", b) }

// Lower renders LOWER(a).
func Lower(a string) string { return call("LOWER", a) }

// Upper renders UPPER(a).
func Upper(a string) string { return call("UPPER", a) }

// IsEmpty renders ISEMPTY(a).
func IsEmpty(a string) string { return call("ISEMPTY", a) }

// LowerInc renders LOWER_INC(a).
func LowerInc(a string) string { return call("LOWER_INC", a) }

// UpperInc renders UPPER_INC(a).
func UpperInc(a string) string { return call("UPPER_INC", a) }

// LowerInf renders LOWER_INF(a).
func LowerInf(a string) string { return call("LOWER_INF", a) }

// UpperInf renders UPPER_INF(a).
func UpperInf(a string) string { return call("UPPER_INF", a) }

// RangeMerge renders RANGE_MERGE(a, b).
func RangeMerge(a, b string) string { return call("RANGE_MERGE", a, b) }

// MultirangeExpr renders MULTIRANGE(a, b, ...).
func MultirangeExpr(ranges ...string) string { return call("MULTIRANGE", ranges...) }

// Unnest renders UNNEST(a).
func Unnest(a string) string { return call("UNNEST", a) }

func binary(a, op, b string) string {
	return fmt.Sprintf("(%s %s %s)", a, op, b)
}

func call(fn string, args ...string) string {
	return fmt.Sprintf("%s(%s)", fn, strings.Join(args, ", "))
}
