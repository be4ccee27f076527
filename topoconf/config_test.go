package topoconf_test

import (
	"testing"

	"github.com/1000RR/connectionTopology/topoconf"
	"github.com/stretchr/testify/assert"
)

// TestNew_Defaults verifies the zero-option configuration: default cell
// width, built-in palette, fallback terminals, no grids.
func TestNew_Defaults(t *testing.T) {
	cfg := topoconf.New()

	assert.Equal(t, topoconf.DefaultCellWidth, cfg.CellWidth())
	assert.Equal(t, []string{"G", "T"}, cfg.Terminals())
	assert.Empty(t, cfg.Prefixes())
	assert.Zero(t, cfg.MaxRows())
	assert.NotEmpty(t, cfg.Palette())
}

// TestWithGrid_FirstDeclarationWins verifies prefix upper-casing, sorted
// Prefixes(), and that a repeated prefix declaration is ignored.
func TestWithGrid_FirstDeclarationWins(t *testing.T) {
	cfg := topoconf.New(
		topoconf.WithGrid("b", 5, 4),
		topoconf.WithGrid("A", 3, 4),
		topoconf.WithGrid("B", 9, 9), // repeat: ignored
	)

	assert.Equal(t, []string{"A", "B"}, cfg.Prefixes())
	d, ok := cfg.Dimensions("B")
	assert.True(t, ok)
	assert.Equal(t, topoconf.Dim{Columns: 5, Rows: 4}, d)
	_, ok = cfg.Dimensions("C")
	assert.False(t, ok)
	assert.Equal(t, 4, cfg.MaxRows())
}

// TestWithTerminals_NormalizesAndDeduplicates verifies upper-casing,
// trimming, de-duplication, and that declared names suppress the G,T
// fallback.
func TestWithTerminals_NormalizesAndDeduplicates(t *testing.T) {
	cfg := topoconf.New(topoconf.WithTerminals("gnd", " TIP ", "GND", ""))

	assert.Equal(t, []string{"GND", "TIP"}, cfg.Terminals())
}

// TestColor_CyclicReuse verifies palette indices wrap modulo the palette
// length.
func TestColor_CyclicReuse(t *testing.T) {
	cfg := topoconf.New(topoconf.WithPalette([]string{"x", "y", "z"}))

	assert.Equal(t, "x", cfg.Color(0))
	assert.Equal(t, "z", cfg.Color(2))
	assert.Equal(t, "x", cfg.Color(3))
	assert.Equal(t, "y", cfg.Color(7))
}

// TestOptionPanics verifies that option constructors fail fast on
// meaningless inputs.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { topoconf.WithGrid("A", 0, 4) })
	assert.Panics(t, func() { topoconf.WithGrid("A", 3, -1) })
	assert.Panics(t, func() { topoconf.WithCellWidth(0) })
	assert.Panics(t, func() { topoconf.WithPalette(nil) })
}

// TestAccessorsCopy verifies accessors hand out copies, keeping the Config
// immutable from the caller's side.
func TestAccessorsCopy(t *testing.T) {
	cfg := topoconf.New(topoconf.WithGrid("A", 3, 4))

	cfg.Prefixes()[0] = "Z"
	assert.Equal(t, []string{"A"}, cfg.Prefixes())

	cfg.Palette()[0] = "clobbered"
	assert.NotEqual(t, "clobbered", cfg.Palette()[0])
}

// TestClassifier verifies the derived classifier honors the configured
// prefixes and terminals.
func TestClassifier(t *testing.T) {
	cfg := topoconf.New(
		topoconf.WithGrid("A", 3, 4),
		topoconf.WithTerminals("GND"),
	)
	cls := cfg.Classifier()

	assert.True(t, cls.IsPin("A2"))
	assert.False(t, cls.IsPin("B2"))
	assert.True(t, cls.IsTerminal("GND"))
	assert.False(t, cls.IsTerminal("T"), "declared names replace the fallback")
}
