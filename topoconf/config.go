package topoconf

import (
	"sort"
	"strings"

	"github.com/1000RR/connectionTopology/ident"
)

// DefaultCellWidth is the character width of one chart cell.
const DefaultCellWidth = 8

// GridSeparator joins side-by-side grids in consolidated output.
const GridSeparator = "  "

// defaultTerminals is the declared-terminal fallback used when the
// configuration source names none.
var defaultTerminals = []string{"G", "T"}

// Dim holds one grid's column and row counts.
type Dim struct {
	Columns int
	Rows    int
}

// Config is the immutable run configuration. Build it with New and the
// With* options; all fields are private so a constructed Config cannot be
// reshaped by pipeline stages.
type Config struct {
	dims      map[string]Dim
	prefixes  []string // sorted
	terminals []string // upper-cased, first-occurrence order
	cellWidth int
	palette   []string
}

// Option mutates the configuration under construction.
type Option func(*Config)

// WithGrid declares a grid prefix with its column and row counts.
// The first declaration of a prefix wins; repeats are ignored, matching the
// configuration-source semantics. Panics on non-positive dimensions.
func WithGrid(prefix string, columns, rows int) Option {
	if columns <= 0 || rows <= 0 {
		// Fail fast: options validate, pipeline stages never panic.
		panic("topoconf: WithGrid requires positive dimensions")
	}
	return func(c *Config) {
		p := strings.ToUpper(prefix)
		if _, seen := c.dims[p]; seen {
			return
		}
		c.dims[p] = Dim{Columns: columns, Rows: rows}
	}
}

// WithTerminals declares the end-to-end terminal names. Names are
// upper-cased and de-duplicated preserving first occurrence order.
func WithTerminals(names ...string) Option {
	return func(c *Config) {
		seen := make(map[string]bool, len(names))
		for _, t := range c.terminals {
			seen[t] = true
		}
		for _, n := range names {
			u := strings.ToUpper(strings.TrimSpace(n))
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			c.terminals = append(c.terminals, u)
		}
	}
}

// WithCellWidth overrides the chart cell width. Panics on non-positive width.
func WithCellWidth(w int) Option {
	if w <= 0 {
		panic("topoconf: WithCellWidth requires a positive width")
	}
	return func(c *Config) {
		c.cellWidth = w
	}
}

// WithPalette overrides the group color palette. Panics on an empty palette
// because palette indices are computed modulo its length.
func WithPalette(codes []string) Option {
	if len(codes) == 0 {
		panic("topoconf: WithPalette requires at least one color")
	}
	return func(c *Config) {
		c.palette = make([]string, len(codes))
		copy(c.palette, codes)
	}
}

// New constructs a Config from the given options. Defaults: cell width 8,
// the built-in palette, and terminals G,T when no WithTerminals option
// supplied any name.
// Complexity: O(options + P log P) for P declared prefixes.
func New(opts ...Option) Config {
	c := Config{
		dims:      make(map[string]Dim),
		cellWidth: DefaultCellWidth,
		palette:   DefaultPalette(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.terminals) == 0 {
		c.terminals = append(c.terminals, defaultTerminals...)
	}
	c.prefixes = make([]string, 0, len(c.dims))
	for p := range c.dims {
		c.prefixes = append(c.prefixes, p)
	}
	sort.Strings(c.prefixes)

	return c
}

// Prefixes returns the configured grid prefixes in sorted order.
func (c Config) Prefixes() []string {
	out := make([]string, len(c.prefixes))
	copy(out, c.prefixes)

	return out
}

// Dimensions returns the column/row counts for prefix; ok is false when the
// prefix is not configured.
func (c Config) Dimensions(prefix string) (Dim, bool) {
	d, ok := c.dims[prefix]

	return d, ok
}

// Terminals returns the declared terminal names in declaration order.
func (c Config) Terminals() []string {
	out := make([]string, len(c.terminals))
	copy(out, c.terminals)

	return out
}

// CellWidth returns the chart cell width.
func (c Config) CellWidth() int {
	return c.cellWidth
}

// Palette returns the ordered group color palette.
func (c Config) Palette() []string {
	out := make([]string, len(c.palette))
	copy(out, c.palette)

	return out
}

// Color returns the palette entry for a group at position i, reusing the
// palette cyclically.
func (c Config) Color(i int) string {
	return c.palette[i%len(c.palette)]
}

// MaxRows returns the largest configured row count, which fixes the common
// padded height for side-by-side grid display. Zero when no grids are
// configured.
func (c Config) MaxRows() int {
	max := 0
	for _, d := range c.dims {
		if d.Rows > max {
			max = d.Rows
		}
	}

	return max
}

// Classifier builds the token classifier matching this configuration.
func (c Config) Classifier() *ident.Classifier {
	return ident.NewClassifier(c.prefixes, c.terminals)
}
