package report

import (
	"sort"
	"strings"

	"github.com/1000RR/connectionTopology/topoconf"
)

// externalTable writes the single-row colored table of external elements
// under a neutral header. No items, no table.
func (w *Writer) externalTable(items []string, colors map[string]string) {
	if len(items) == 0 {
		return
	}

	w.printf("\n%s\n", w.banner.Render("ALL EXTERNAL CONNECTIONS (Colored):"))

	cellW := w.cfg.CellWidth()
	border := strings.Repeat("+"+strings.Repeat("-", cellW), len(items)) + "+"
	w.printf("%s%s%s\n", topoconf.NeutralBackground, border, topoconf.Reset)

	totalW := len(items)*(cellW+1) - 1
	w.printf("%s|%s|%s\n", topoconf.NeutralBackground, centerPad("EXTERNAL", totalW), topoconf.Reset)
	w.printf("%s%s%s\n", topoconf.NeutralBackground, border, topoconf.Reset)

	var row strings.Builder
	row.WriteString(topoconf.NeutralBackground + "|" + topoconf.Reset)
	for _, item := range items {
		color, ok := colors[item]
		if !ok {
			color = topoconf.NeutralBackground
		}
		row.WriteString(color + centerPad(item, cellW) + topoconf.NeutralBackground + "|" + topoconf.Reset)
	}
	w.printf("%s\n", row.String())
	w.printf("%s%s%s\n", topoconf.NeutralBackground, border, topoconf.Reset)
}

// prepareExternalItems unions the observed external elements with the
// declared terminals and sorts them by (assigned color, name) so the table
// clusters same-colored cells together.
func prepareExternalItems(externals map[string]bool, colors map[string]string, cfg topoconf.Config) []string {
	set := make(map[string]bool, len(externals))
	for item := range externals {
		set[item] = true
	}
	for _, t := range cfg.Terminals() {
		set[t] = true
	}

	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		ci, ok := colors[items[i]]
		if !ok {
			ci = topoconf.NeutralBackground
		}
		cj, ok := colors[items[j]]
		if !ok {
			cj = topoconf.NeutralBackground
		}
		if ci != cj {
			return ci < cj
		}

		return strings.ToUpper(items[i]) < strings.ToUpper(items[j])
	})

	return items
}

// standaloneBox builds the vertically stacked, group-colored box of
// external elements shown beside an individual chart. Empty for groups
// without external members.
func standaloneBox(items []string, color string, cellW int) []string {
	if len(items) == 0 {
		return nil
	}

	border := "+" + strings.Repeat("-", cellW) + "+"
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, color+border+topoconf.Reset)
	for _, item := range items {
		lines = append(lines, color+"|"+centerPad(item, cellW)+"|"+topoconf.Reset)
	}
	lines = append(lines, color+border+topoconf.Reset)

	return lines
}

// centerPad centers s in width w, extra padding to the right for even
// widths, mirroring the grid cell centering.
func centerPad(s string, w int) string {
	gap := w - len(s)
	if gap <= 0 {
		return s
	}
	left := gap/2 + (gap & w & 1)

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
