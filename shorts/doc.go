// Package shorts derives the terminal-short report from the globally
// reduced connectivity groups: which external elements each declared
// end-to-end terminal is electrically shorted to, and which transient
// element groups are isolated from every terminal.
//
// What:
//
//   - Analyze scans each reduced group once. Every declared terminal
//     present in a group is shorted to each other terminal element of that
//     group, carrying the element's already-assigned display color (or the
//     neutral background when it has none).
//   - A group is an isolated-transient candidate when all of its non-pin
//     members are transient elements, more than one of them, and no
//     declared terminal is present. Candidates are confirmed against the
//     whole dataset: a group is reported only if none of its members is a
//     short target of any terminal anywhere.
//
// Why:
//
//   - Reduction already merges everything transitively connected, so the
//     dataset-wide confirmation is a safety net rather than a second
//     merge — but it is what suppresses spurious isolation reports when a
//     transient-patterned name is declared as a terminal override, so it
//     must not be skipped.
//
// Invariants:
//
//   - A terminal is never reported as shorted to itself.
//   - A terminal absent from every group reports an empty short set.
//   - Deterministic output ordering: terminals in declaration order,
//     targets and isolated members sorted case-insensitively.
//
// Complexity: O(N + T·E) over total members, declared terminals T and
// external elements E per group.
package shorts
