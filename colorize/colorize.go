package colorize

import (
	"sort"

	"github.com/1000RR/connectionTopology/chart"
	"github.com/1000RR/connectionTopology/grid"
	"github.com/1000RR/connectionTopology/groups"
	"github.com/1000RR/connectionTopology/ident"
	"github.com/1000RR/connectionTopology/topoconf"
)

// PlacedOp is a chart operation routed to one grid's layout.
type PlacedOp struct {
	Prefix string
	chart.Op
}

// Assignment is the full result of coloring one reduced group list.
type Assignment struct {
	// PinColor maps each colored pin to its group's palette entry.
	PinColor map[string]string
	// ExternalColor maps each terminal element to its group's palette entry.
	ExternalColor map[string]string
	// Ops paints every placeable colored pin, in deterministic emission
	// order (priority order of groups, canonical order within a group).
	Ops []PlacedOp
	// Externals is the set of all terminal elements observed in any group.
	Externals map[string]bool
}

// Assign colors the reduced groups against the configured palette and
// derives the overlay operations for every pin with a known coordinate.
// active holds the pins in an energized state; they receive the emphasis
// marker in addition to their color.
//
// Steps:
//  1. Fix each group's palette entry by its position in reduced.
//  2. Order groups by priority class (stable), the population order.
//  3. Populate the color maps first-write-wins; emit the op pair for each
//     newly colored pin whose grid and coordinate are known.
//
// Complexity: O(N + G log G). Memory: O(N).
func Assign(reduced []groups.Group, layouts map[string]*grid.Layout, active map[string]bool, cfg topoconf.Config) Assignment {
	cls := cfg.Classifier()

	// 1. Palette entry by input-list position, not priority order.
	colorOf := make([]string, len(reduced))
	for i := range reduced {
		colorOf[i] = cfg.Color(i)
	}

	// 2. Priority order decides who writes the maps first.
	order := make([]int, len(reduced))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return reduced[order[i]].Class(cls) < reduced[order[j]].Class(cls)
	})

	a := Assignment{
		PinColor:      make(map[string]string),
		ExternalColor: make(map[string]string),
		Externals:     make(map[string]bool),
	}

	// 3. First write wins; later (lower-priority) claims never overwrite.
	for _, gi := range order {
		color := colorOf[gi]
		for _, member := range reduced[gi] {
			switch cls.Kind(member) {
			case ident.Pin:
				if _, claimed := a.PinColor[member]; claimed {
					continue
				}
				a.PinColor[member] = color
				a.Ops = append(a.Ops, PinOps(layouts, member, color, active[member])...)
			case ident.Transient, ident.Terminal:
				if _, claimed := a.ExternalColor[member]; !claimed {
					a.ExternalColor[member] = color
				}
				a.Externals[member] = true
			default:
				// Unknown tokens are inert: carried, never colored.
			}
		}
	}

	return a
}

// PinOps builds the marker pair for one pin: the terminator at the cell's
// closing border and the color code (with the emphasis marker when active)
// at the cell's opening, one cell width earlier. Returns nil when the
// pin's grid is not configured or the pin has no coordinate: skipped, not
// an error.
// Complexity: O(1).
func PinOps(layouts map[string]*grid.Layout, pin, color string, active bool) []PlacedOp {
	prefix, _, ok := ident.SplitPin(pin)
	if !ok {
		return nil
	}
	l, ok := layouts[prefix]
	if !ok {
		return nil
	}
	c, ok := l.Coord(pin)
	if !ok {
		return nil
	}

	code := color
	if active {
		code += topoconf.ActiveEmphasis
	}

	return []PlacedOp{
		{Prefix: prefix, Op: chart.Op{Line: c.Line, Col: c.Col, Code: topoconf.PinTerminator}},
		{Prefix: prefix, Op: chart.Op{Line: c.Line, Col: c.Col - l.CellWidth, Code: code}},
	}
}

// OpsFor filters ops down to one grid's chart operations.
// Complexity: O(len(ops)).
func OpsFor(ops []PlacedOp, prefix string) []chart.Op {
	var out []chart.Op
	for _, op := range ops {
		if op.Prefix == prefix {
			out = append(out, op.Op)
		}
	}

	return out
}
