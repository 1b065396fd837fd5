package dbrange

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/multirange"
	"github.com/munnik/pgrange/rangeset"
)

// CastMulti is Cast's multirange counterpart: it accepts an already-internal
// multirange.Multirange[T] or a pgtype.Multirange[T] wire value.
func CastMulti[T any](elem element.Capability[T], v any, params Params) (multirange.Multirange[T], error) {
	switch w := v.(type) {
	case multirange.Multirange[T]:
		return w, nil
	case pgtype.Multirange[T]:
		ranges := make([]rangeset.Range[T], 0, len(w))
		for _, wr := range w {
			r, err := fromWire(elem, wr)
			if err != nil {
				return multirange.Multirange[T]{}, fmt.Errorf("dbrange: cast multirange element (db_type=%s): %w", params.DBType, err)
			}
			ranges = append(ranges, r)
		}
		return multirange.New(elem, ranges...), nil
	default:
		return multirange.Multirange[T]{}, fmt.Errorf("dbrange: cannot cast %T to a multirange (db_type=%s inner_type=%s)", v, params.DBType, params.InnerType)
	}
}

// DumpMulti dumps every range of m through Dump, preserving order.
func DumpMulti[T any](m multirange.Multirange[T], innerDump func(innerType string, v T) (any, error), params Params) (pgtype.Multirange[any], error) {
	ranges := m.Ranges()
	out := make(pgtype.Multirange[any], 0, len(ranges))
	for _, r := range ranges {
		dumped, err := Dump(r, innerDump, params)
		if err != nil {
			return nil, err
		}
		out = append(out, dumped)
	}
	return out, nil
}

// LoadMulti loads every element of w through Load, passing params.InnerType
// through unchanged for each one, never a hard-coded placeholder, and
// renormalizes via multirange.New.
func LoadMulti[T any](elem element.Capability[T], w pgtype.Multirange[any], innerLoad func(innerType string, v any) (T, error), params Params) (multirange.Multirange[T], error) {
	ranges := make([]rangeset.Range[T], 0, len(w))
	for _, wr := range w {
		r, err := Load(elem, wr, innerLoad, params)
		if err != nil {
			return multirange.Multirange[T]{}, fmt.Errorf("dbrange: load multirange element (db_type=%s): %w", params.DBType, err)
		}
		ranges = append(ranges, r)
	}
	return multirange.New(elem, ranges...), nil
}
