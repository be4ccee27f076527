// Package grid builds the bordered ASCII layout of a switch grid and the
// coordinate map that places each pin inside that layout.
//
// What:
//
//   - Layout owns the rectangular text lines of one C×R grid ("+" / "-" /
//     "|" borders, cells centered to a fixed width, pins numbered row-major
//     from 1) and a lookup from pin identifier to its insertion point.
//   - A pin's coordinate is (line index, offset of the cell's closing
//     border character), measured against the unmodified layout — exactly
//     what the chart overlay needs to splice markers without arithmetic.
//   - BuildAll constructs one Layout per configured prefix and pads them
//     with blank lines to a common height so grids display side by side
//     row-aligned.
//
// Why:
//
//   - Charts recolor cells by inserting escape codes at exact offsets;
//     computing those offsets once at construction keeps every later stage
//     free of text measurement.
//
// Complexity:
//
//   - New: O(C×R) time and memory.
//   - Coord: O(1).
//   - BuildAll: O(Σ C×R) across configured grids.
//
// Deterministic; no error paths — dimensions are validated at configuration
// time and assumed positive here.
package grid
