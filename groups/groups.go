package groups

import (
	"sort"
	"strings"

	"github.com/1000RR/connectionTopology/ident"
)

// Group is one connectivity group in canonical member order: non-pin
// elements first (alphabetical, case-insensitive), then pins by grid
// prefix and numeric index. Groups are produced fresh by Reduce and never
// mutated afterwards.
type Group []string

// Priority classes for group ordering. Lower sorts first.
const (
	// ClassTerminal marks a group containing a declared end-to-end terminal.
	ClassTerminal = 0
	// ClassExternal marks a group containing a terminal element but no
	// declared terminal.
	ClassExternal = 1
	// ClassPins marks a group of pins (and inert tokens) only.
	ClassPins = 2
)

// Class returns the priority class of g under cls. Unknown tokens do not
// raise a group's class.
// Complexity: O(len(g)).
func (g Group) Class(cls *ident.Classifier) int {
	hasExternal := false
	for _, member := range g {
		switch cls.Kind(member) {
		case ident.Terminal:
			return ClassTerminal
		case ident.Transient:
			hasExternal = true
		}
	}
	if hasExternal {
		return ClassExternal
	}

	return ClassPins
}

// Reduce merges the raw statements into disjoint connectivity groups.
//
// Steps:
//  1. Drop empty statements; register identifiers in first-seen order.
//  2. Union every statement's members into one set (union-find with path
//     compression and union by rank).
//  3. Collect components in first-seen order of their members.
//  4. Canonicalize member order within each group, then sort the group
//     list by priority class with the first canonical member as tie-break.
//
// The result is a partition: transitively overlapping statements always
// land in a single group, however many hops connect them.
//
// Complexity: O(N α(N) + G log G). Memory: O(N).
func Reduce(statements [][]string, cls *ident.Classifier) []Group {
	// 1. Register identifiers in deterministic first-seen order.
	var order []string
	parent := make(map[string]string)
	rank := make(map[string]int)
	for _, stmt := range statements {
		for _, id := range stmt {
			if _, seen := parent[id]; !seen {
				parent[id] = id
				rank[id] = 0
				order = append(order, id)
			}
		}
	}
	if len(order) == 0 {
		return nil
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank.
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 2. Each statement is a hyperedge: union all members to its first.
	for _, stmt := range statements {
		if len(stmt) == 0 {
			continue
		}
		first := stmt[0]
		for _, id := range stmt[1:] {
			union(first, id)
		}
	}

	// 3. Collect components in first-seen member order.
	members := make(map[string][]string)
	var roots []string
	for _, id := range order {
		root := find(id)
		if _, seen := members[root]; !seen {
			roots = append(roots, root)
		}
		members[root] = append(members[root], id)
	}

	// 4. Canonicalize each group, then priority-sort the list.
	out := make([]Group, 0, len(roots))
	for _, root := range roots {
		out = append(out, canonicalize(members[root], cls))
	}
	sortByPriority(out, cls)

	return out
}

// canonicalize returns members in canonical order: non-pins alphabetically
// (case-insensitive), then pins by (prefix, numeric index).
func canonicalize(members []string, cls *ident.Classifier) Group {
	var pins, externals []string
	for _, m := range members {
		if cls.IsPin(m) {
			pins = append(pins, m)
		} else {
			externals = append(externals, m)
		}
	}
	sort.Slice(externals, func(i, j int) bool {
		return strings.ToUpper(externals[i]) < strings.ToUpper(externals[j])
	})
	sort.Slice(pins, func(i, j int) bool {
		pi, ni, _ := ident.SplitPin(pins[i])
		pj, nj, _ := ident.SplitPin(pins[j])
		if pi != pj {
			return pi < pj
		}

		return ni < nj
	})

	return append(Group(externals), pins...)
}

// sortByPriority orders the group list by (priority class, first canonical
// member compared case-insensitively). Post-reduction groups are disjoint;
// a stable sort keeps first-seen order when first members collide on case.
func sortByPriority(list []Group, cls *ident.Classifier) {
	sort.SliceStable(list, func(i, j int) bool {
		ci, cj := list[i].Class(cls), list[j].Class(cls)
		if ci != cj {
			return ci < cj
		}

		return strings.ToUpper(list[i][0]) < strings.ToUpper(list[j][0])
	})
}
