package chart_test

import (
	"testing"

	"github.com/1000RR/connectionTopology/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_SingleLine verifies a pair of markers lands at the exact base
// offsets regardless of their length.
func TestApply_SingleLine(t *testing.T) {
	base := []string{"+--------+", "|   A1   |", "+--------+"}

	got := chart.Apply(base, []chart.Op{
		{Line: 1, Col: 9, Code: "<reset>"},
		{Line: 1, Col: 1, Code: "<color>"},
	})

	assert.Equal(t, "|<color>   A1   <reset>|", got[1])
	assert.Equal(t, base[0], got[0])
	assert.Equal(t, base[2], got[2])
}

// TestApply_OrderIndependence verifies that ops at different columns on
// one line produce identical text in either given order, so the descending
// sort makes op order irrelevant.
func TestApply_OrderIndependence(t *testing.T) {
	base := []string{"|   A1   |   A2   |"}
	a := chart.Op{Line: 0, Col: 9, Code: "[x]"}
	b := chart.Op{Line: 0, Col: 18, Code: "[yyyy]"}

	first := chart.Apply(base, []chart.Op{a, b})
	second := chart.Apply(base, []chart.Op{b, a})

	assert.Equal(t, first, second)
	assert.Equal(t, "|   A1   [x]|   A2   [yyyy]|", first[0])
}

// TestAscendingSpliceCorruptsOffsets is the regression counter-example:
// splicing in ascending column order against the original offsets shifts
// every later insertion point by the marker length, corrupting the line.
// It documents why Apply must sort descending.
func TestAscendingSpliceCorruptsOffsets(t *testing.T) {
	base := "|   A1   |   A2   |"
	naive := func(s string, ops []chart.Op) string {
		for _, op := range ops {
			s = s[:op.Col] + op.Code + s[op.Col:]
		}

		return s
	}

	ascending := naive(base, []chart.Op{
		{Col: 9, Code: "[x]"},
		{Col: 18, Code: "[y]"},
	})
	want := chart.Apply([]string{base}, []chart.Op{
		{Line: 0, Col: 9, Code: "[x]"},
		{Line: 0, Col: 18, Code: "[y]"},
	})[0]

	assert.NotEqual(t, want, ascending, "ascending naive splice must corrupt the later offset")
	assert.Equal(t, "|   A1   [x]|   A2   [y]|", want)
}

// TestApply_DoesNotMutateBase verifies the shared base survives repeated,
// differently-colored applications.
func TestApply_DoesNotMutateBase(t *testing.T) {
	base := []string{"|   A1   |"}

	first := chart.Apply(base, []chart.Op{{Line: 0, Col: 1, Code: "<red>"}})
	second := chart.Apply(base, []chart.Op{{Line: 0, Col: 1, Code: "<blue>"}})

	assert.Equal(t, "|   A1   |", base[0])
	assert.Equal(t, "|<red>   A1   |", first[0])
	assert.Equal(t, "|<blue>   A1   |", second[0])
}

// TestApply_Bounds verifies out-of-range lines are skipped and columns
// clamp to the line ends.
func TestApply_Bounds(t *testing.T) {
	base := []string{"abc"}

	got := chart.Apply(base, []chart.Op{
		{Line: 5, Col: 0, Code: "ignored"},
		{Line: -1, Col: 0, Code: "ignored"},
		{Line: 0, Col: 99, Code: ">"},
		{Line: 0, Col: -3, Code: "<"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "<abc>", got[0])
}

// TestApply_SameColumnStacking verifies ops sharing a column stack with
// the later-given op emitted first, preserving the splice semantics the
// coordinate maps were measured against.
func TestApply_SameColumnStacking(t *testing.T) {
	got := chart.Apply([]string{"abcd"}, []chart.Op{
		{Line: 0, Col: 2, Code: "X"},
		{Line: 0, Col: 2, Code: "Y"},
	})

	assert.Equal(t, "abYXcd", got[0])
}

// TestApply_EmptyOps verifies a no-op application is a plain clone.
func TestApply_EmptyOps(t *testing.T) {
	base := []string{"one", "two"}

	got := chart.Apply(base, nil)

	assert.Equal(t, base, got)
}
