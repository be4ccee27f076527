// Package topoconf holds the immutable run configuration shared by every
// stage of the connection-topology pipeline, together with the fixed ANSI
// palette and marker codes used when charts are rendered.
//
// What:
//
//   - Config carries the grid prefixes with their column/row dimensions,
//     the chart cell width, the declared end-to-end terminal names, and
//     the ordered color palette for cyclic reuse.
//   - Functional options (WithGrid, WithTerminals, WithCellWidth, ...)
//     assemble a Config once; nothing mutates it afterwards.
//   - ANSI constants: Reset, ActiveEmphasis, PinTerminator,
//     NeutralBackground, and the isolated-group label/cell colors.
//
// Why:
//
//   - The original tool grew around process-wide mutable globals; here the
//     configuration is an explicit value constructed by the loader and
//     passed by value into every component call.
//
// Contract:
//
//   - Option constructors validate and panic on meaningless inputs
//     (non-positive dimensions, empty palette); pipeline stages themselves
//     never panic.
//   - Prefixes() always returns sorted prefixes so that chart column order
//     is deterministic.
//
// Complexity: all accessors are O(1) or O(P) for P configured prefixes.
package topoconf
