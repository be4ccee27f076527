package shorts

import (
	"sort"
	"strings"

	"github.com/1000RR/connectionTopology/groups"
	"github.com/1000RR/connectionTopology/ident"
	"github.com/1000RR/connectionTopology/topoconf"
)

// Report is the terminal-short analysis over one global reduction.
type Report struct {
	// Terminals lists the declared terminals in declaration order; every
	// entry has a ShortedTo key, possibly empty.
	Terminals []string
	// ShortedTo maps each declared terminal to its short targets and their
	// display colors.
	ShortedTo map[string]map[string]string
	// Isolated lists the confirmed isolated transient-element groups, each
	// sorted case-insensitively, in reduced-list order.
	Isolated [][]string
}

// Targets returns the short targets of terminal sorted case-insensitively.
// Complexity: O(E log E).
func (r Report) Targets(terminal string) []string {
	m := r.ShortedTo[terminal]
	out := make([]string, 0, len(m))
	for target := range m {
		out = append(out, target)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToUpper(out[i]) < strings.ToUpper(out[j])
	})

	return out
}

// Analyze computes the short report for the reduced groups. externalColor
// is the element→color map of the global color assignment; targets missing
// from it fall back to the neutral background.
//
// Steps:
//  1. Initialize an empty short set for every declared terminal.
//  2. Per group: record each present terminal's shorts to every other
//     terminal element of the group, and collect isolated-transient
//     candidates.
//  3. Confirm candidates against all short targets dataset-wide.
//
// Complexity: O(N + T·E). Memory: O(T·E).
func Analyze(reduced []groups.Group, externalColor map[string]string, cfg topoconf.Config) Report {
	cls := cfg.Classifier()

	r := Report{
		Terminals: cfg.Terminals(),
		ShortedTo: make(map[string]map[string]string, len(cfg.Terminals())),
	}
	for _, t := range r.Terminals {
		r.ShortedTo[t] = make(map[string]string)
	}

	var candidates [][]string
	for _, g := range reduced {
		// Partition the group's non-pin members once.
		var externals []string // transient elements and declared terminals
		var transients []string
		nonPin := 0
		var present []string // declared terminals, declaration order below
		inGroup := make(map[string]bool, len(g))
		for _, member := range g {
			inGroup[member] = true
			switch cls.Kind(member) {
			case ident.Pin:
			case ident.Transient:
				nonPin++
				externals = append(externals, member)
				transients = append(transients, member)
			case ident.Terminal:
				nonPin++
				externals = append(externals, member)
			default:
				// Unknown: counts as a non-pin member (it blocks isolation)
				// but is never a short target.
				nonPin++
			}
		}
		for _, t := range r.Terminals {
			if inGroup[t] {
				present = append(present, t)
			}
		}

		// 2a. Shorts: each present terminal to every other external member.
		for _, t := range present {
			for _, target := range externals {
				if target == t {
					continue // never shorted to itself
				}
				if _, seen := r.ShortedTo[t][target]; seen {
					continue
				}
				color, ok := externalColor[target]
				if !ok {
					color = topoconf.NeutralBackground
				}
				r.ShortedTo[t][target] = color
			}
		}

		// 2b. Isolation candidate: only transients among non-pin members,
		// more than one of them, and no terminal present.
		if len(present) == 0 && len(transients) > 1 && len(transients) == nonPin {
			candidates = append(candidates, transients)
		}
	}

	// 3. Dataset-wide confirmation: drop any candidate touching a short
	// target of any terminal.
	targets := make(map[string]bool)
	for _, m := range r.ShortedTo {
		for target := range m {
			targets[target] = true
		}
	}
	for _, cand := range candidates {
		reachable := false
		for _, member := range cand {
			if targets[member] {
				reachable = true
				break
			}
		}
		if reachable {
			continue
		}
		sorted := make([]string, len(cand))
		copy(sorted, cand)
		sort.Slice(sorted, func(i, j int) bool {
			return strings.ToUpper(sorted[i]) < strings.ToUpper(sorted[j])
		})
		r.Isolated = append(r.Isolated, sorted)
	}

	return r
}
