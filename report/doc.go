// Package report assembles the tool's console output: the reduction
// summary, the per-group and consolidated colored charts, the state-only
// interconnection chart, and the terminal-short summary.
//
// The Writer renders side-by-side grid sections (one column per configured
// prefix, row-aligned through the common padded height), the single-row
// external-connections table, and the vertically stacked external box of
// the individual charts. Chart cells carry the raw ANSI markers produced
// by the colorize package; fixed decorations (section banners, notes) are
// styled through a lipgloss renderer bound to the output writer, so plain
// sinks receive plain text.
//
// All methods write to the Writer's sink and are deterministic for a fixed
// input; nothing here mutates the shared grid layouts.
package report
