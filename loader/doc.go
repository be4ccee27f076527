// Package loader reads the textual configuration and connection sources
// and hands the core well-formed, in-memory statements.
//
// What:
//
//   - ReadLines returns a file's non-comment, non-blank lines; a missing
//     file simply yields no lines.
//   - ParseConfig scans the data source for grid definitions ("A:3x4",
//     case-insensitive, first definition per prefix wins) and the declared
//     terminal list ("e2epins: GND, TIP"), assembling the immutable
//     topoconf.Config.
//   - Connections parses the remaining CSV rows into raw connection
//     statements, dropping configuration-shaped tokens.
//   - StateGroups and StatePins parse one grid's state file: each row
//     becomes a statement (bare numbers gain the grid prefix, foreign-grid
//     pins are dropped, external names upper-cased), and the flat pin set
//     marks which pins are active for the emphasis overlay.
//
// Why:
//
//   - The core performs no text validation; everything syntax-shaped stays
//     here so the pipeline stages only ever see classified tokens and a
//     consistent configuration.
//
// Errors:
//
//   - Only real I/O failures surface; a nonexistent path is not an error.
//     Malformed CSV rows fall back to plain splitting rather than failing
//     the run.
package loader
