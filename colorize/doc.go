// Package colorize assigns palette colors to reduced connectivity groups
// and derives the chart overlay operations for every placeable pin.
//
// What:
//
//   - Assign walks the reduced groups and produces the pin→color and
//     external-element→color maps, the set of observed external elements,
//     and the per-grid marker operations that paint each colored pin's
//     cell (reset marker at the cell's closing border, color marker —
//     plus an emphasis code for active pins — at its opening).
//   - Palette index is the group's position in the reduced list; the
//     priority order (declared-terminal groups, then terminal-element
//     groups, then pin groups) only decides map population order, with
//     first-write-wins semantics.
//
// Why:
//
//   - Within one reduction the groups are disjoint and the split between
//     palette index and population order is invisible; across the
//     differently-scoped reductions the surrounding charts use, the
//     first-write rule is what lets a higher-priority group keep its color
//     claim on a shared element. The behavior is preserved exactly.
//
// Invariants:
//
//   - Deterministic: identical input yields identical maps and an
//     identical operation list.
//   - Pins without a configured grid or without a coordinate in their grid
//     produce no operation; unknown tokens are never colored.
//
// Complexity: O(N) over total group members, plus O(G log G) for the
// priority ordering.
package colorize
