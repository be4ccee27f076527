// Package ident classifies raw connection-statement tokens into the four
// element categories the rest of the module operates on.
//
// What:
//
//   - Classifier precomputes the configured grid prefixes and declared
//     end-to-end terminal names once, then answers pure predicate queries.
//   - Kind is a tagged variant over {Pin, Transient, Terminal, Unknown},
//     computed once per token instead of re-matching patterns at every
//     use site.
//   - SplitPin decomposes a pin token into its grid prefix and numeric index
//     for canonical ordering.
//
// Why:
//
//   - Connection groups mix switch pins ("A7"), transient accessories
//     ("P1+"), and configured terminals ("GND"); every downstream stage
//     (reduction, coloring, short analysis) branches on the category.
//   - Declared-terminal status always wins: a token matching the transient
//     pattern that is also configured as a terminal is a Terminal.
//
// Complexity:
//
//   - Classifier construction: O(P+T) for P prefixes and T terminals.
//   - All predicates and Kind: O(len(token)).
//
// No errors: unrecognized tokens classify as Unknown and are inert.
package ident
