package grid

import (
	"strconv"
	"strings"

	"github.com/1000RR/connectionTopology/topoconf"
)

// Coord is a pin's insertion point in a Layout: the line index and the
// column offset of the cell's closing border character, both measured
// against the unmodified layout text.
type Coord struct {
	Line int
	Col  int
}

// Layout is the rendered ASCII form of one switch grid plus the pin
// coordinate map. It is immutable once built; chart overlays clone Lines
// before splicing.
type Layout struct {
	Prefix    string
	Columns   int
	Rows      int
	CellWidth int
	Lines     []string
	coords    map[string]Coord
}

// New builds the Layout for one grid. Pins are named prefix+index, numbered
// row-major starting at 1. Cell rows sit at line index 2·row+1 between
// border lines.
// Complexity: O(C×R) time and memory.
func New(prefix string, columns, rows, cellWidth int) *Layout {
	l := &Layout{
		Prefix:    prefix,
		Columns:   columns,
		Rows:      rows,
		CellWidth: cellWidth,
		coords:    make(map[string]Coord, columns*rows),
	}

	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", columns)
	l.Lines = append(l.Lines, border)

	pin := 1
	for r := 0; r < rows; r++ {
		var row strings.Builder
		row.WriteByte('|')
		for c := 0; c < columns; c++ {
			name := prefix + strconv.Itoa(pin)
			// Closing border offset: current length plus the cell body.
			l.coords[name] = Coord{Line: 2*r + 1, Col: row.Len() + cellWidth}
			row.WriteString(center(name, cellWidth))
			row.WriteByte('|')
			pin++
		}
		l.Lines = append(l.Lines, row.String())
		if r < rows-1 {
			l.Lines = append(l.Lines, border)
		}
	}
	l.Lines = append(l.Lines, border)

	return l
}

// Coord returns the insertion point for pin; ok is false when the pin does
// not exist in this layout.
// Complexity: O(1).
func (l *Layout) Coord(pin string) (Coord, bool) {
	c, ok := l.coords[pin]

	return c, ok
}

// Width returns the character width of the layout's lines.
func (l *Layout) Width() int {
	if len(l.Lines) == 0 {
		return 0
	}

	return len(l.Lines[0])
}

// Height returns the number of lines, including any padding.
func (l *Layout) Height() int {
	return len(l.Lines)
}

// padTo extends Lines with all-blank lines of the layout's width until the
// layout is height lines tall. Shorter targets leave the layout unchanged.
func (l *Layout) padTo(height int) {
	blank := strings.Repeat(" ", l.Width())
	for len(l.Lines) < height {
		l.Lines = append(l.Lines, blank)
	}
}

// BuildAll constructs one Layout per configured prefix, padded to the
// common height 2·maxRows+1 so that grids of differing row counts display
// side by side row-aligned.
// Complexity: O(Σ C×R) across configured grids.
func BuildAll(cfg topoconf.Config) map[string]*Layout {
	height := 2*cfg.MaxRows() + 1
	layouts := make(map[string]*Layout, len(cfg.Prefixes()))
	for _, prefix := range cfg.Prefixes() {
		d, ok := cfg.Dimensions(prefix)
		if !ok {
			continue
		}
		l := New(prefix, d.Columns, d.Rows, cfg.CellWidth())
		l.padTo(height)
		layouts[prefix] = l
	}

	return layouts
}

// center pads s with spaces to width w. The odd padding character goes to
// the right for even widths and to the left for odd widths, matching the
// cell centering the coordinate map was measured against. Strings already
// w or wider are returned unchanged.
func center(s string, w int) string {
	gap := w - len(s)
	if gap <= 0 {
		return s
	}
	left := gap/2 + (gap & w & 1)

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
