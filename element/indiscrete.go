package element

import (
	"time"

	"github.com/shopspring/decimal"
)

// All capabilities in this file are indiscrete: Successor always reports
// ok=false, so Consecutive is always false for them, per spec.

type float64Capability struct{}

// Float64 returns the indiscrete element capability for float64.
// PostgreSQL equivalent: none built in (used for custom float ranges).
func Float64() Capability[float64] {
	return float64Capability{}
}

func (float64Capability) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (float64Capability) Successor(float64) (float64, bool) {
	return 0, false
}

type decimalCapability struct{}

// Decimal returns the indiscrete element capability for arbitrary-precision
// decimals. PostgreSQL equivalent: numrange.
func Decimal() Capability[decimal.Decimal] {
	return decimalCapability{}
}

func (decimalCapability) Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

func (decimalCapability) Successor(decimal.Decimal) (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

// timeCapability backs both DateTime and NaiveDateTime: both compare
// time.Time values directly and are indiscrete. NaiveDateTime exists as a
// distinct capability purely so callers can tag wall-clock values (where the
// zone is ignored by convention) separately from timezone-aware instants.
type timeCapability struct{}

// DateTime returns the indiscrete element capability for timezone-aware
// instants. PostgreSQL equivalent: tstzrange.
func DateTime() Capability[time.Time] {
	return timeCapability{}
}

// NaiveDateTime returns the indiscrete element capability for wall-clock
// timestamps with no associated zone. PostgreSQL equivalent: tsrange.
func NaiveDateTime() Capability[time.Time] {
	return timeCapability{}
}

func (timeCapability) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (timeCapability) Successor(time.Time) (time.Time, bool) {
	return time.Time{}, false
}

type timeOfDayCapability struct{}

// TimeOfDay returns the indiscrete element capability for a clock offset
// since midnight, with no associated calendar date.
func TimeOfDay() Capability[time.Duration] {
	return timeOfDayCapability{}
}

func (timeOfDayCapability) Compare(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (timeOfDayCapability) Successor(time.Duration) (time.Duration, bool) {
	return 0, false
}
