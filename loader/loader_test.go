package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1000RR/connectionTopology/ident"
	"github.com/1000RR/connectionTopology/topoconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadLines verifies comment and blank-line filtering, and that a
// missing file reads as an empty source without error.
func TestReadLines(t *testing.T) {
	path := writeFile(t, "data.csv", "# heading\n\nA:3x4\n  \nA1,A2\n#tail\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A:3x4", "A1,A2"}, lines)

	lines, err = ReadLines(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// TestParseConfig_Grids verifies grid extraction: case-insensitive
// definitions, first declaration per prefix wins, zero dimensions dropped.
func TestParseConfig_Grids(t *testing.T) {
	cfg := ParseConfig([]string{
		"a:3x4",
		"B:5x2, A:9x9", // A repeat ignored; B picked from mid-line
		"C:0x4",        // dropped
	})

	assert.Equal(t, []string{"A", "B"}, cfg.Prefixes())
	d, _ := cfg.Dimensions("A")
	assert.Equal(t, topoconf.Dim{Columns: 3, Rows: 4}, d)
	d, _ = cfg.Dimensions("B")
	assert.Equal(t, topoconf.Dim{Columns: 5, Rows: 2}, d)
	assert.Equal(t, 4, cfg.MaxRows())
}

// TestParseConfig_Terminals verifies the declared-terminal list and the
// G,T fallback.
func TestParseConfig_Terminals(t *testing.T) {
	cfg := ParseConfig([]string{"A:3x4", "e2epins: gnd, tip"})
	assert.Equal(t, []string{"GND", "TIP"}, cfg.Terminals())

	cfg = ParseConfig([]string{"E2EPINS: ring"})
	assert.Equal(t, []string{"RING"}, cfg.Terminals(), "definition matching is case-insensitive")

	cfg = ParseConfig([]string{"A:3x4"})
	assert.Equal(t, []string{"G", "T"}, cfg.Terminals())
}

// TestConnections verifies statement extraction: config lines and tokens
// are dropped, cells trimmed, empty rows skipped.
func TestConnections(t *testing.T) {
	got := Connections([]string{
		"A:3x4",
		"A1, A2 ,P1+",
		"e2epins: G",
		"B1,  ,G",
		",,",
	})

	assert.Equal(t, [][]string{
		{"A1", "A2", "P1+"},
		{"B1", "G"},
	}, got)
}

// TestStateGroups verifies state-row tokenization: bare numbers gain the
// prefix, foreign pins are dropped, externals upper-cased, output ordered
// externals-first then pins by index.
func TestStateGroups(t *testing.T) {
	cls := ident.NewClassifier([]string{"A", "B"}, []string{"G", "T"})

	got := StateGroups([]string{
		"12, 1, g",     // bare numbers gain prefix A
		"A3 / p1+",     // explicit own pin, transient upper-cased
		"B4, 2",        // foreign pin B4 dropped
		"noise, *, ()", // nothing recognizable
	}, "A", cls)

	assert.Equal(t, [][]string{
		{"G", "A1", "A12"},
		{"P1+", "A3"},
		{"A2"},
	}, got)
}

// TestStatePins verifies the flat active-pin set ignores externals and
// foreign-grid pins.
func TestStatePins(t *testing.T) {
	got := StatePins([]string{"1, A2, p1+", "B9, 14"}, "A")

	assert.Equal(t, map[string]bool{
		"A1":  true,
		"A2":  true,
		"A14": true,
	}, got)
}

// TestStateFile verifies the combined read of a state file, and that a
// missing file reads as empty state.
func TestStateFile(t *testing.T) {
	cls := ident.NewClassifier([]string{"A"}, []string{"G"})
	base := writeFile(t, "state1.csv", "# comment\n1,2,g\n")
	base = base[:len(base)-len(".csv")]

	stmts, pins, err := StateFile(base, "A", cls)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"G", "A1", "A2"}}, stmts)
	assert.Equal(t, map[string]bool{"A1": true, "A2": true}, pins)

	stmts, pins, err = StateFile(filepath.Join(t.TempDir(), "nope"), "A", cls)
	require.NoError(t, err)
	assert.Empty(t, stmts)
	assert.Empty(t, pins)
}

// TestHelpers covers the configuration-token predicates.
func TestHelpers(t *testing.T) {
	assert.True(t, isGridDefinition(" A:3x4 "))
	assert.True(t, isGridDefinition("b:10x2"))
	assert.False(t, isGridDefinition("A1"))
	assert.False(t, isGridDefinition("A:3x"))

	assert.True(t, isTerminalDefinition("e2epins: G,T"))
	assert.True(t, isTerminalDefinition(" E2Epins:G"))
	assert.False(t, isTerminalDefinition("pins: G"))
}
