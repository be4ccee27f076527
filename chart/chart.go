package chart

import (
	"sort"
	"strings"
)

// Op is one marker insertion into a grid layout: Code is spliced into line
// Line at byte offset Col, with Col measured against the unmodified base
// line.
type Op struct {
	Line int
	Col  int
	Code string
}

// Apply returns a copy of base with all ops spliced in. The base lines are
// never mutated, so repeated applications over the same base are
// independent. Ops on one line are applied in descending column order;
// ops the base cannot hold (line out of range) are skipped, and columns
// beyond a line's end clamp to its end.
//
// Complexity: O(L + K log K + S).
func Apply(base []string, ops []Op) []string {
	out := make([]string, len(base))
	copy(out, base)

	byLine := make(map[int][]Op, len(ops))
	for _, op := range ops {
		if op.Line < 0 || op.Line >= len(out) {
			continue
		}
		byLine[op.Line] = append(byLine[op.Line], op)
	}

	for line, lineOps := range byLine {
		// Descending column order: a splice never shifts the offsets of
		// splices still to come on the same line. Stable, so ops sharing a
		// column keep their given relative order.
		sort.SliceStable(lineOps, func(i, j int) bool {
			return lineOps[i].Col > lineOps[j].Col
		})
		out[line] = splice(out[line], lineOps)
	}

	return out
}

// splice builds the annotated line from immutable segments of s, inserting
// each op's code at its clamped offset. ops must be sorted by descending
// column.
func splice(s string, ops []Op) string {
	var b strings.Builder
	grown := len(s)
	for _, op := range ops {
		grown += len(op.Code)
	}
	b.Grow(grown)

	end := len(s)
	// Walk right to left emitting (code, trailing segment) pairs, then
	// reassemble in order.
	segments := make([]string, 0, 2*len(ops)+1)
	for _, op := range ops {
		col := op.Col
		if col > end {
			col = end
		}
		if col < 0 {
			col = 0
		}
		segments = append(segments, s[col:end], op.Code)
		end = col
	}
	segments = append(segments, s[:end])

	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString(segments[i])
	}

	return b.String()
}
