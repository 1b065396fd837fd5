package dbrange

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munnik/pgrange/element"
	"github.com/munnik/pgrange/rangeset"
)

func identityDump(_ string, v int) (any, error) { return v, nil }
func identityLoad(_ string, v any) (int, error) { return v.(int), nil }

func TestCastAlreadyInternal(t *testing.T) {
	r, err := rangeset.New(element.Integer[int](), rangeset.Value(1), rangeset.Value(10))
	require.NoError(t, err)

	got, err := Cast(element.Integer[int](), r, Params{DBType: "int8range"})
	require.NoError(t, err)
	assert.True(t, got.Equal(r))
}

func TestCastWireRange(t *testing.T) {
	w := pgtype.Range[int]{Lower: 1, Upper: 10, Valid: true}
	w.LowerType, w.UpperType = pgtype.Inclusive, pgtype.Exclusive

	got, err := Cast(element.Integer[int](), w, Params{DBType: "int8range"})
	require.NoError(t, err)
	lo, _ := got.Lower()
	up, _ := got.Upper()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, up)
}

func TestCastDateConvenienceObject(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got, err := Cast(element.Date(), [2]time.Time{start, end}, Params{DBType: "daterange", InnerType: "date"})
	require.NoError(t, err)
	lo, _ := got.Lower()
	assert.True(t, lo.Equal(start))
}

func TestCastFailureReportsParams(t *testing.T) {
	_, err := Cast(element.Integer[int](), "garbage", Params{DBType: "int8range", InnerType: "int8"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int8range")
}

func TestDumpPreservesEmptyAndUnbound(t *testing.T) {
	empty := rangeset.Empty(element.Integer[int]())
	dumped, err := Dump(empty, identityDump, Params{DBType: "int8range"})
	require.NoError(t, err)
	assert.Equal(t, pgtype.Empty, dumped.LowerType)
	assert.Equal(t, pgtype.Empty, dumped.UpperType)

	unbounded, err := rangeset.New(element.Integer[int](), rangeset.Unbound[int](), rangeset.Value(5))
	require.NoError(t, err)
	dumped2, err := Dump(unbounded, identityDump, Params{DBType: "int8range"})
	require.NoError(t, err)
	assert.Equal(t, pgtype.Unbounded, dumped2.LowerType)
}

func TestLoadTriggersNormalization(t *testing.T) {
	// A wire range with an exclusive lower bound should come back
	// canonicalized to inclusive, just like rangeset.New would produce.
	w := pgtype.Range[any]{Lower: 1, Upper: 10, Valid: true, LowerType: pgtype.Exclusive, UpperType: pgtype.Exclusive}
	got, err := Load(element.Integer[int](), w, identityLoad, Params{DBType: "int8range", InnerType: "int8"})
	require.NoError(t, err)
	assert.True(t, got.LowerInclusive())
	assert.False(t, got.UpperInclusive())
	lo, _ := got.Lower()
	up, _ := got.Upper()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 10, up)
}

func TestRoundTrip(t *testing.T) {
	r, err := rangeset.New(element.Integer[int](), rangeset.Value(1), rangeset.Value(10))
	require.NoError(t, err)

	dumped, err := Dump(r, identityDump, Params{DBType: "int8range", InnerType: "int8"})
	require.NoError(t, err)

	loaded, err := Load(element.Integer[int](), dumped, identityLoad, Params{DBType: "int8range", InnerType: "int8"})
	require.NoError(t, err)

	assert.True(t, loaded.Equal(r))
}
