package rangesql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryOperators(t *testing.T) {
	assert.Equal(t, "(a @> b)", Contains("a", "b"))
	assert.Equal(t, "(a <@ b)", ContainedBy("a", "b"))
	assert.Equal(t, "(a && b)", Overlaps("a", "b"))
	assert.Equal(t, "(a << b)", StrictlyLeft("a", "b"))
	assert.Equal(t, "(a >> b)", StrictlyRight("a", "b"))
	assert.Equal(t, "(a &< b)", NotExtendRight("a", "b"))
	assert.Equal(t, "(a &> b)", NotExtendLeft("a", "b"))
	assert.Equal(t, "(a -|- b)", Adjacent("a", "b"))
	assert.Equal(t, "(a + b)", Union("a", "b"))
	assert.Equal(t, "(a * b)", Intersection("a", "b"))
	assert.Equal(t, "(a - b)", Difference("a", "b"))
}

func TestUnaryFunctions(t *testing.T) {
	assert.Equal(t, "LOWER(a)", Lower("a"))
	assert.Equal(t, "UPPER(a)", Upper("a"))
	assert.Equal(t, "ISEMPTY(a)", IsEmpty("a"))
	assert.Equal(t, "LOWER_INC(a)", LowerInc("a"))
	assert.Equal(t, "UPPER_INC(a)", UpperInc("a"))
	assert.Equal(t, "LOWER_INF(a)", LowerInf("a"))
	assert.Equal(t, "UPPER_INF(a)", UpperInf("a"))
	assert.Equal(t, "UNNEST(a)", Unnest("a"))
}

func TestRangeMerge(t *testing.T) {
	assert.Equal(t, "RANGE_MERGE(a, b)", RangeMerge("a", "b"))
}

func TestMultirangeExprVariadic(t *testing.T) {
	assert.Equal(t, "MULTIRANGE()", MultirangeExpr())
	assert.Equal(t, "MULTIRANGE(a)", MultirangeExpr("a"))
	assert.Equal(t, "MULTIRANGE(a, b, c)", MultirangeExpr("a", "b", "c"))
}

func TestHelpersComposeIntoLargerExpressions(t *testing.T) {
	expr := Contains(Union("r1", "r2"), "r3")
	assert.Equal(t, "((r1 + r2) @> r3)", expr)
}
