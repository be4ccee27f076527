// Package chart splices marker text into pre-rendered grid lines without
// corrupting offsets or the shared base layout.
//
// What:
//
//   - Op names one insertion: (line index, column offset, marker text),
//     with the offset measured against the unmodified base line.
//   - Apply clones the base lines and performs all insertions, grouping
//     ops by line and splicing each line's ops in descending column order
//     so earlier insertions never shift the offsets still to be applied.
//
// Why:
//
//   - Marker text (ANSI codes) has arbitrary length; ascending-order
//     splicing would displace every later offset on the same line. The
//     descending rule makes op order irrelevant to the result.
//   - The base is reused across several independently-colored chart
//     variants, so Apply never mutates it.
//
// Complexity:
//
//   - Apply: O(L + K log K + S) for L base lines, K ops, and S total
//     spliced bytes.
//
// No failure modes: out-of-range lines are skipped, columns clamp to the
// line bounds.
package chart
