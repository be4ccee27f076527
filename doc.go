// Package connectiontopology visualizes the electrical connectivity of
// switch-matrix hardware — from raw wiring statements to colored ASCII
// charts and a terminal short summary.
//
// 🚀 What is connectionTopology?
//
//	A deterministic toolkit that brings together:
//		• Token classification: pins, transient elements, declared terminals
//		• Group reduction: transitive merge of overlapping connectivity statements
//		• Grid layouts: bordered ASCII switch grids with exact pin coordinates
//		• Color assignment: stable palette colors with priority-ordered claims
//		• Chart overlays: ANSI markers spliced into pre-rendered grid lines
//		• Short analysis: terminal shorts and isolated transient groups
//
// ✨ Why choose connectionTopology?
//
//   - Deterministic – byte-identical reports for identical inputs, every run
//   - Pure functions – the core packages hold no state and write no logs
//   - Immutable layouts – overlays clone, shared grid text is never mutated
//   - Composable – each stage is a plain package usable on its own
//
// Under the hood, everything is organized by pipeline stage:
//
//	ident/    — token classification (pin / transient / terminal / unknown)
//	topoconf/ — run configuration, palette and ANSI marker constants
//	grid/     — ASCII grid layouts and pin coordinate maps
//	groups/   — transitive reduction into canonical connectivity groups
//	colorize/ — palette assignment and render-operation derivation
//	chart/    — marker splicing into layout lines
//	shorts/   — terminal short and isolation analysis
//	loader/   — data and state file parsing
//	report/   — the five-part stdout report
//	cmd/conntop — the command-line entry point
//
// Quick ASCII example:
//
//	+--------+--------+        G is shorted to: ( P1+ )
//	|   A1   |   A2   |        Shorted P-groups: none
//	+--------+--------+
//
// Pins connected through closed switches land in one group, share one
// color, and surface in the short summary when a terminal is involved.
//
// See each package's doc.go for details, invariants and complexity notes.
package connectiontopology
