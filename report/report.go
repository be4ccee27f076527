package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1000RR/connectionTopology/chart"
	"github.com/1000RR/connectionTopology/colorize"
	"github.com/1000RR/connectionTopology/grid"
	"github.com/1000RR/connectionTopology/groups"
	"github.com/1000RR/connectionTopology/ident"
	"github.com/1000RR/connectionTopology/shorts"
	"github.com/1000RR/connectionTopology/topoconf"
)

// ActiveNote explains the emphasis marker under consolidated charts.
const ActiveNote = "Note: Bold and italic text indicates pin is active per state file."

// stateNote is the variant for the state-only chart; it repeats
// ActiveNote's emphasis explanation after its own lead-in.
const stateNote = "Note: Colors represent state-active interconnections only. " +
	"Bold and italic text indicates pin is active per state file."

// Writer renders every report section to one sink.
type Writer struct {
	out     io.Writer
	cfg     topoconf.Config
	cls     *ident.Classifier
	layouts map[string]*grid.Layout
	banner  lipgloss.Style
	note    lipgloss.Style
}

// New builds a Writer over out. Styles come from a renderer bound to out,
// so non-terminal sinks get undecorated banners.
func New(out io.Writer, cfg topoconf.Config, layouts map[string]*grid.Layout) *Writer {
	r := lipgloss.NewRenderer(out)

	return &Writer{
		out:     out,
		cfg:     cfg,
		cls:     cfg.Classifier(),
		layouts: layouts,
		banner:  r.NewStyle().Bold(true),
		note:    r.NewStyle().Faint(true),
	}
}

func (w *Writer) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// rule writes a horizontal banner rule of n characters.
func (w *Writer) rule(ch string, n int) {
	w.printf("%s\n", strings.Repeat(ch, n))
}

// title writes a banner-framed section title.
func (w *Writer) title(text string, width int) {
	w.rule("=", width)
	w.printf("%s\n", w.banner.Render(text))
	w.rule("=", width)
}

// height returns the common padded layout height, zero without grids.
func (w *Writer) height() int {
	for _, p := range w.cfg.Prefixes() {
		if l, ok := w.layouts[p]; ok {
			return l.Height()
		}
	}

	return 0
}

// sectionWidth returns the character width of the side-by-side grid block.
func (w *Writer) sectionWidth() int {
	width := 0
	prefixes := w.cfg.Prefixes()
	for _, p := range prefixes {
		if l, ok := w.layouts[p]; ok {
			width += l.Width()
		}
	}
	if n := len(prefixes); n > 1 {
		width += (n - 1) * len(topoconf.GridSeparator)
	}

	return width
}

// Preliminary writes the reduction summary: the combined source statements
// and the globally merged groups.
func (w *Writer) Preliminary(initial [][]string, reduced []groups.Group, sources []string) {
	w.title("PRELIMINARY STEP: GLOBAL CONNECTION GROUP REDUCTION", 70)

	w.printf("--- Original Groups (Combined from %s): ---\n", strings.Join(sources, ", "))
	for i, stmt := range initial {
		w.printf("Source Group %d: %s\n", i+1, strings.Join(stmt, ", "))
	}

	w.printf("\n--- Globally Reduced Connection Groups (All Overlaps Merged): ---\n")
	for i, g := range reduced {
		w.printf("Reduced Group %d: %s\n", i+1, strings.Join(g, ", "))
	}
	w.rule("=", 70)
	w.printf("\n")
}

// IndividualCharts writes one colored chart per reduced group (Part 1) and
// returns the consolidated first-write-wins accumulation the consolidated
// chart (Part 2) is built from.
func (w *Writer) IndividualCharts(reduced []groups.Group, active map[string]bool) colorize.Assignment {
	w.title("PART 1: INDIVIDUAL CONNECTION GROUP CHARTS (FROM DATA REDUCTION)", 66)

	consolidated := colorize.Assignment{
		PinColor:      make(map[string]string),
		ExternalColor: make(map[string]string),
		Externals:     make(map[string]bool),
	}

	height := w.height()
	sep := topoconf.GridSeparator
	sectionW := w.sectionWidth()
	padW := w.cfg.CellWidth() + 2

	for gi, g := range reduced {
		color := w.cfg.Color(gi)

		var ops []colorize.PlacedOp
		var externals []string
		for _, member := range g {
			switch w.cls.Kind(member) {
			case ident.Pin:
				pair := colorize.PinOps(w.layouts, member, color, active[member])
				ops = append(ops, pair...)
				if len(pair) == 0 {
					continue
				}
				if _, claimed := consolidated.PinColor[member]; !claimed {
					consolidated.PinColor[member] = color
					consolidated.Ops = append(consolidated.Ops, pair...)
				}
			case ident.Transient, ident.Terminal:
				externals = append(externals, member)
				if _, claimed := consolidated.ExternalColor[member]; !claimed {
					consolidated.ExternalColor[member] = color
				}
				consolidated.Externals[member] = true
			}
		}

		// Group heading and column headers.
		w.printf("\n%s\n", strings.Repeat("-", sectionW+len(sep)+padW))
		w.printf("Group: %s %s(COLOR)%s (Bold/Italic text = State Active)\n",
			strings.Join(g, ","), color, topoconf.Reset)
		w.printf("%s%s%s\n", padRight(w.gridHeaders("GROUP"), sectionW), sep, "EXTERNAL")

		// Colored grid columns plus the stacked external box.
		columns := w.applyByPrefix(ops)
		box := standaloneBox(externals, color, w.cfg.CellWidth())
		blank := strings.Repeat(" ", padW)
		for i := 0; i < height; i++ {
			row := make([]string, 0, len(columns)+1)
			for _, p := range w.cfg.Prefixes() {
				row = append(row, columns[p][i])
			}
			cell := blank
			if i < len(box) {
				cell = box[i]
			}
			w.printf("%s%s%s\n", strings.Join(row, sep), sep, cell)
		}
	}

	return consolidated
}

// ConsolidatedChart writes the overlaid chart for one color assignment
// (Parts 2 and 3 and the populated Part 2.5) followed by the external
// connections table.
func (w *Writer) ConsolidatedChart(title string, a colorize.Assignment, note string) {
	w.printf("\n\n")
	w.title(title, 80)
	w.switchGrids(a.Ops, note)
	w.externalTable(prepareExternalItems(a.Externals, a.ExternalColor, w.cfg), a.ExternalColor)
	w.printf("\n")
	w.rule("=", 80)
}

// StateCharts reduces the state-only statements and writes their chart
// (Part 2.5), or the empty notice when the state files carry no
// interconnections.
func (w *Writer) StateCharts(stateStatements [][]string, active map[string]bool) {
	reduced := groups.Reduce(stateStatements, w.cls)
	if len(reduced) == 0 {
		w.printf("\n\n")
		w.title("PART 2.5: SWITCH STATE INTERCONNECTIONS (Active Connections from State Files Only)", 80)
		w.printf("No active inter-switch connections detected in the state files.\n")

		return
	}

	a := colorize.Assign(reduced, w.layouts, active, w.cfg)
	w.ConsolidatedChart(
		"PART 2.5: SWITCH STATE INTERCONNECTIONS (Active Connections from State Files Only)",
		a, stateNote)
}

// ShortSummary writes the terminal-short report (Part 4).
func (w *Writer) ShortSummary(rep shorts.Report) {
	w.printf("\n\n")
	w.title("PART 4: GLOBAL EXTERNAL SHORT SUMMARY", 80)

	for _, terminal := range rep.Terminals {
		targets := rep.Targets(terminal)
		if len(targets) == 0 {
			w.printf("%s is shorted to: nothing\n", terminal)
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s is shorted to: ", terminal)
		for _, target := range targets {
			fmt.Fprintf(&b, "%s( %s )%s ", rep.ShortedTo[terminal][target], target, topoconf.Reset)
		}
		w.printf("%s\n", b.String())
	}

	var b strings.Builder
	if len(rep.Isolated) == 0 {
		fmt.Fprintf(&b, "%sShorted P-groups:%s none", topoconf.IsolatedLabel, topoconf.Reset)
	} else {
		fmt.Fprintf(&b, "%sShorted P-groups:%s", topoconf.IsolatedLabel, topoconf.Reset)
		for _, group := range rep.Isolated {
			fmt.Fprintf(&b, " %sGroup:%s", topoconf.IsolatedLabel, topoconf.Reset)
			for _, member := range group {
				fmt.Fprintf(&b, " %s( %s )%s", topoconf.IsolatedCell, member, topoconf.Reset)
			}
		}
	}
	w.printf("%s\n", b.String())

	w.printf("\n")
	w.rule("=", 80)
}

// switchGrids writes the side-by-side colored grids with their headers and
// the note line.
func (w *Writer) switchGrids(ops []colorize.PlacedOp, note string) {
	w.printf("\n%s\n", w.gridHeaders("SWITCH"))
	w.printf("%s\n", w.note.Render(note))

	columns := w.applyByPrefix(ops)
	height := w.height()
	for i := 0; i < height; i++ {
		row := make([]string, 0, len(columns))
		for _, p := range w.cfg.Prefixes() {
			row = append(row, columns[p][i])
		}
		w.printf("%s\n", strings.Join(row, topoconf.GridSeparator))
	}
}

// applyByPrefix overlays ops onto each prefix's base layout, returning the
// colored lines per prefix. The shared bases are never mutated.
func (w *Writer) applyByPrefix(ops []colorize.PlacedOp) map[string][]string {
	columns := make(map[string][]string, len(w.layouts))
	for _, p := range w.cfg.Prefixes() {
		l, ok := w.layouts[p]
		if !ok {
			continue
		}
		columns[p] = chart.Apply(l.Lines, colorize.OpsFor(ops, p))
	}

	return columns
}

// gridHeaders builds the "LABEL A  LABEL B" header row.
func (w *Writer) gridHeaders(label string) string {
	parts := make([]string, 0, len(w.cfg.Prefixes()))
	for _, p := range w.cfg.Prefixes() {
		parts = append(parts, label+" "+p)
	}

	return strings.Join(parts, topoconf.GridSeparator)
}

// padRight pads s with spaces to width n.
func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return s + strings.Repeat(" ", n-len(s))
}
