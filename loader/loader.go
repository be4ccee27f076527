package loader

import (
	"bufio"
	"encoding/csv"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/1000RR/connectionTopology/ident"
	"github.com/1000RR/connectionTopology/topoconf"
)

// terminalDefPrefix introduces the declared-terminal list in the data file.
const terminalDefPrefix = "e2epins:"

var (
	// gridDefPattern matches a whole-token grid definition like "A:3x4".
	gridDefPattern = regexp.MustCompile(`(?i)^[A-Z]:\d+x\d+$`)
	// gridDefScan extracts every grid definition embedded in a line.
	gridDefScan = regexp.MustCompile(`(?i)([A-Z]):(\d+)x(\d+)`)
	// statePartSplit cuts state-file cells into candidate tokens.
	statePartSplit = regexp.MustCompile(`[^A-Za-z0-9+-]+`)
	// listSplit is the fallback splitter for the terminal list.
	listSplit = regexp.MustCompile(`[,\s]+`)
	// digitsOnly matches a bare pin number in a state file.
	digitsOnly = regexp.MustCompile(`^\d+$`)
	// upperPin matches an explicit pin token in a state file.
	upperPin = regexp.MustCompile(`^[A-Z]\d+$`)
)

// ReadLines reads path and returns its lines minus '#' comments and blank
// lines. A nonexistent file yields no lines and no error; absent sources
// are a normal, empty input.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// isGridDefinition reports whether token is exactly a grid definition.
func isGridDefinition(token string) bool {
	return gridDefPattern.MatchString(strings.TrimSpace(token))
}

// isTerminalDefinition reports whether token declares the terminal list.
func isTerminalDefinition(token string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(token)), terminalDefPrefix)
}

// ParseConfig scans the data-source lines for grid definitions and the
// declared-terminal list and assembles the run configuration. The first
// definition of a prefix wins; terminal names are upper-cased and
// de-duplicated; G and T apply when no list is declared.
func ParseConfig(lines []string) topoconf.Config {
	var opts []topoconf.Option
	seen := make(map[string]bool)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, m := range gridDefScan.FindAllStringSubmatch(trimmed, -1) {
			prefix := strings.ToUpper(m[1])
			columns, rows := atoi(m[2]), atoi(m[3])
			if seen[prefix] || columns <= 0 || rows <= 0 {
				continue
			}
			seen[prefix] = true
			opts = append(opts, topoconf.WithGrid(prefix, columns, rows))
		}
		if isTerminalDefinition(trimmed) {
			rest := strings.TrimSpace(trimmed[len(terminalDefPrefix):])
			opts = append(opts, topoconf.WithTerminals(splitList(rest)...))
		}
	}

	return topoconf.New(opts...)
}

// Connections parses the data-source lines into raw connection statements,
// skipping configuration lines and configuration-shaped tokens. Empty
// statements are dropped.
func Connections(lines []string) [][]string {
	var statements [][]string
	for _, line := range lines {
		if isGridDefinition(line) || isTerminalDefinition(line) {
			continue
		}
		var stmt []string
		for _, item := range splitCSV(line) {
			item = strings.TrimSpace(item)
			if item == "" || isGridDefinition(item) || isTerminalDefinition(item) {
				continue
			}
			stmt = append(stmt, item)
		}
		if len(stmt) > 0 {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// StateGroups parses one grid's state-file lines into connection
// statements. Bare numbers gain the grid prefix; explicit pins of other
// grids are dropped; transient elements and declared terminals are kept
// upper-cased. Each statement is ordered externals-first, then pins by
// index.
func StateGroups(lines []string, prefix string, cls *ident.Classifier) [][]string {
	var statements [][]string
	for _, line := range lines {
		group := make(map[string]bool)
		for _, item := range splitCSV(line) {
			if strings.TrimSpace(item) == "" || isGridDefinition(item) || isTerminalDefinition(item) {
				continue
			}
			for _, part := range statePartSplit.Split(item, -1) {
				if part == "" {
					continue
				}
				upper := strings.ToUpper(part)
				switch {
				case digitsOnly.MatchString(part):
					group[prefix+part] = true
				case upperPin.MatchString(part) && strings.HasPrefix(part, prefix):
					group[part] = true
				case cls.IsExternal(upper):
					group[upper] = true
				}
			}
		}
		if len(group) == 0 {
			continue
		}

		var pins, externals []string
		for member := range group {
			if cls.IsPin(member) {
				pins = append(pins, member)
			} else {
				externals = append(externals, member)
			}
		}
		sort.Slice(pins, func(i, j int) bool {
			_, ni, _ := ident.SplitPin(pins[i])
			_, nj, _ := ident.SplitPin(pins[j])

			return ni < nj
		})
		sort.Slice(externals, func(i, j int) bool {
			return strings.ToUpper(externals[i]) < strings.ToUpper(externals[j])
		})
		statements = append(statements, append(externals, pins...))
	}

	return statements
}

// StatePins parses one grid's state-file lines into the flat set of active
// pins for the emphasis overlay.
func StatePins(lines []string, prefix string) map[string]bool {
	pins := make(map[string]bool)
	for _, line := range lines {
		for _, item := range splitCSV(line) {
			if strings.TrimSpace(item) == "" || isGridDefinition(item) || isTerminalDefinition(item) {
				continue
			}
			for _, part := range statePartSplit.Split(item, -1) {
				switch {
				case part == "":
				case digitsOnly.MatchString(part):
					pins[prefix+part] = true
				case upperPin.MatchString(part) && strings.HasPrefix(part, prefix):
					pins[part] = true
				}
			}
		}
	}

	return pins
}

// StateFile reads base+".csv" and returns both its statements and its
// active-pin set.
func StateFile(base, prefix string, cls *ident.Classifier) ([][]string, map[string]bool, error) {
	lines, err := ReadLines(base + ".csv")
	if err != nil {
		return nil, nil, err
	}

	return StateGroups(lines, prefix, cls), StatePins(lines, prefix), nil
}

// splitCSV parses one line as a CSV record, falling back to a plain comma
// split when the line is not well-formed CSV.
func splitCSV(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rec, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}

	return rec
}

// splitList splits the declared-terminal list: CSV first, comma/space
// fallback.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rec, err := r.Read()
	if err != nil {
		rec = listSplit.Split(s, -1)
	}

	return rec
}

// atoi converts digits already matched by a \d+ group; overflow or other
// conversion failure reads as zero and the definition is dropped upstream.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
