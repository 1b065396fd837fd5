package dbrange

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/rangeset"
)

// Cast converts v into a rangeset.Range[T]. It accepts, in order: an
// already-internal rangeset.Range[T] (returned unchanged), a pgtype.Range[T]
// wire value, or a [2]time.Time contiguous discrete date-range convenience
// object (only meaningful when T is time.Time). Anything else reports a
// generic cast failure naming the db_type/inner_type pairing that was
// being attempted.
func Cast[T any](elem element.Capability[T], v any, params Params) (rangeset.Range[T], error) {
	switch w := v.(type) {
	case rangeset.Range[T]:
		return w, nil
	case pgtype.Range[T]:
		return fromWire(elem, w)
	case [2]time.Time:
		lower, lowerOK := any(w[0]).(T)
		upper, upperOK := any(w[1]).(T)
		if !lowerOK || !upperOK {
			return rangeset.Range[T]{}, fmt.Errorf("dbrange: date-range convenience object requires a time.Time element type (inner_type=%s)", params.InnerType)
		}
		return rangeset.New(elem, rangeset.Value(lower), rangeset.Value(upper))
	default:
		logrus.WithFields(logrus.Fields{
			"db_type":    params.DBType,
			"inner_type": params.InnerType,
			"go_type":    fmt.Sprintf("%T", v),
		}).Warn("dbrange: cast failed")
		return rangeset.Range[T]{}, fmt.Errorf("dbrange: cannot cast %T to a range (db_type=%s inner_type=%s)", v, params.DBType, params.InnerType)
	}
}

// Dump converts r into its external wire form, transforming each bound
// value through innerDump. Empty and unbound are preserved without calling
// innerDump.
func Dump[T any](r rangeset.Range[T], innerDump func(innerType string, v T) (any, error), params Params) (pgtype.Range[any], error) {
	if r.IsEmpty() {
		return pgtype.Range[any]{Valid: true, LowerType: pgtype.Empty, UpperType: pgtype.Empty}, nil
	}

	out := pgtype.Range[any]{Valid: true}

	if r.LowerUnbound() {
		out.LowerType = pgtype.Unbounded
	} else {
		lo, _ := r.Lower()
		dumped, err := innerDump(params.InnerType, lo)
		if err != nil {
			return pgtype.Range[any]{}, fmt.Errorf("dbrange: dump lower bound: %w", err)
		}
		out.Lower = dumped
		out.LowerType = pgtype.Exclusive
		if r.LowerInclusive() {
			out.LowerType = pgtype.Inclusive
		}
	}

	if r.UpperUnbound() {
		out.UpperType = pgtype.Unbounded
	} else {
		up, _ := r.Upper()
		dumped, err := innerDump(params.InnerType, up)
		if err != nil {
			return pgtype.Range[any]{}, fmt.Errorf("dbrange: dump upper bound: %w", err)
		}
		out.Upper = dumped
		out.UpperType = pgtype.Exclusive
		if r.UpperInclusive() {
			out.UpperType = pgtype.Inclusive
		}
	}

	return out, nil
}

// Load converts w into a rangeset.Range[T], transforming each bound value
// through innerLoad and then re-running rangeset.New's normalization, since
// the wire form is never trusted to already be canonical.
func Load[T any](elem element.Capability[T], w pgtype.Range[any], innerLoad func(innerType string, v any) (T, error), params Params) (rangeset.Range[T], error) {
	if !w.Valid {
		return rangeset.Range[T]{}, fmt.Errorf("dbrange: invalid wire range (db_type=%s)", params.DBType)
	}
	if w.LowerType == pgtype.Empty || w.UpperType == pgtype.Empty {
		return rangeset.Empty(elem), nil
	}

	lower := rangeset.Unbound[T]()
	lowerIncl := true
	if w.LowerType != pgtype.Unbounded {
		v, err := innerLoad(params.InnerType, w.Lower)
		if err != nil {
			return rangeset.Range[T]{}, fmt.Errorf("dbrange: load lower bound: %w", err)
		}
		lower = rangeset.Value(v)
		lowerIncl = w.LowerType == pgtype.Inclusive
	}

	upper := rangeset.Unbound[T]()
	upperIncl := false
	if w.UpperType != pgtype.Unbounded {
		v, err := innerLoad(params.InnerType, w.Upper)
		if err != nil {
			return rangeset.Range[T]{}, fmt.Errorf("dbrange: load upper bound: %w", err)
		}
		upper = rangeset.Value(v)
		upperIncl = w.UpperType == pgtype.Inclusive
	}

	return rangeset.New(elem, lower, upper, rangeset.LowerInclusive(lowerIncl), rangeset.UpperInclusive(upperIncl))
}

// fromWire builds a Range directly from an already element-typed wire
// value, without an inner codec round-trip. Used by Cast, where the wire
// value's bounds are already Go values of T.
func fromWire[T any](elem element.Capability[T], w pgtype.Range[T]) (rangeset.Range[T], error) {
	if !w.Valid {
		return rangeset.Range[T]{}, fmt.Errorf("dbrange: invalid wire range")
	}
	if w.LowerType == pgtype.Empty || w.UpperType == pgtype.Empty {
		return rangeset.Empty(elem), nil
	}

	lower := rangeset.Unbound[T]()
	lowerIncl := true
	if w.LowerType != pgtype.Unbounded {
		lower = rangeset.Value(w.Lower)
		lowerIncl = w.LowerType == pgtype.Inclusive
	}

	upper := rangeset.Unbound[T]()
	upperIncl := false
	if w.UpperType != pgtype.Unbounded {
		upper = rangeset.Value(w.Upper)
		upperIncl = w.UpperType == pgtype.Inclusive
	}

	return rangeset.New(elem, lower, upper, rangeset.LowerInclusive(lowerIncl), rangeset.UpperInclusive(upperIncl))
}
