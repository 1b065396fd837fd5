package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/rangeset"
)

// parseIntRange parses a PostgreSQL range literal over int64 bounds, e.g.
// "[1,10)", "(,5]", "empty". rangectl only exposes the integer element
// capability on the command line; dbrange is where the full set of
// capabilities is wired for program-to-database use.
func parseIntRange(s string) (rangeset.Range[int64], error) {
	elem := element.Integer[int64]()
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "empty") {
		return rangeset.Empty(elem), nil
	}
	if len(s) < 2 {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: %q is not a valid range literal", s)
	}

	lowerIncl := s[0] == '['
	upperIncl := s[len(s)-1] == ']'
	if !lowerIncl && s[0] != '(' {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: %q must start with [ or (", s)
	}
	if !upperIncl && s[len(s)-1] != ')' {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: %q must end with ] or )", s)
	}

	body := s[1 : len(s)-1]
	parts := strings.SplitN(body, ",", 2)
	if len(parts) != 2 {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: %q must contain exactly one comma", s)
	}

	lower, err := parseBound(parts[0])
	if err != nil {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: lower bound of %q: %w", s, err)
	}
	upper, err := parseBound(parts[1])
	if err != nil {
		return rangeset.Range[int64]{}, fmt.Errorf("rangectl: upper bound of %q: %w", s, err)
	}

	return rangeset.New(elem, lower, upper,
		rangeset.LowerInclusive(lowerIncl),
		rangeset.UpperInclusive(upperIncl))
}

func parseBound(raw string) (rangeset.Endpoint[int64], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return rangeset.Unbound[int64](), nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return rangeset.Endpoint[int64]{}, err
	}
	return rangeset.Value(v), nil
}

// formatIntRange renders r back into PostgreSQL range-literal notation.
func formatIntRange(r rangeset.Range[int64]) string {
	if r.IsEmpty() {
		return "empty"
	}
	var b strings.Builder
	if r.LowerInclusive() {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if !r.LowerUnbound() {
		lo, _ := r.Lower()
		fmt.Fprintf(&b, "%d", lo)
	}
	b.WriteByte(',')
	if !r.UpperUnbound() {
		up, _ := r.Upper()
		fmt.Fprintf(&b, "%d", up)
	}
	if r.UpperInclusive() {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
