// Package groups merges raw connection statements into disjoint
// connectivity groups and fixes their canonical ordering.
//
// What:
//
//   - Reduce treats each raw statement as a hyperedge and computes the
//     connected components over all identifiers with a disjoint-set
//     (union-find) structure: path compression plus union by rank.
//   - Every resulting group is re-sorted into canonical member order:
//     non-pin elements first (alphabetical, case-insensitive), then pins
//     by grid prefix and numeric index.
//   - The group list itself is sorted by connection-type priority:
//     groups holding a declared terminal first, then groups holding any
//     terminal element, then pure pin groups; ties break on the first
//     canonical member.
//
// Why:
//
//   - Connectivity is transitive: statements {A1,P1+} and {P1+,G} describe
//     one electrical node. A single merge pass over the statement list can
//     miss multi-hop overlaps; the union-find closure cannot.
//
// Invariants:
//
//   - The output is a true partition of the input identifiers: every
//     identifier lands in exactly one group, and no two groups share one.
//   - Reducing an already-reduced partition returns it unchanged (up to
//     member order).
//   - Output is deterministic for a fixed input and classifier.
//
// Complexity:
//
//   - Reduce: O(N α(N)) for N total identifiers across statements, plus
//     O(G log G) for the final sorts.
//
// Pure functions over in-memory slices; no failure modes — empty
// statements are dropped, an empty input yields an empty output.
package groups
