package topoconf

// ANSI marker codes spliced into chart lines. The overlay works at exact
// byte offsets inside pre-rendered grid text, so these stay raw escape
// sequences rather than styled-string helpers.
const (
	// Reset clears all attributes.
	Reset = "\033[0m"
	// ActiveEmphasis marks a pin reported active by a state file: bold+italic.
	ActiveEmphasis = "\033[1m\033[3m"
	// PinTerminator closes a colored cell without disturbing the rest of the
	// line: normal intensity, italic off, default background.
	PinTerminator = "\033[22m\033[23m\033[49m"
	// NeutralBackground is the fallback color for uncolored table cells.
	NeutralBackground = "\033[40m"
	// IsolatedLabel styles the isolated-group report label: blue, bold.
	IsolatedLabel = "\033[34m\033[1m"
	// IsolatedCell is the background for isolated transient elements.
	IsolatedCell = "\033[44m"
)

// defaultPalette is the ordered set of background colors assigned to
// connection groups, reused cyclically. High-contrast 256-color entries
// follow the basic five for better differentiation on long inputs.
var defaultPalette = []string{
	"\033[41m",       // red
	"\033[42m",       // green
	"\033[44m",       // blue
	"\033[45m",       // magenta
	"\033[46m",       // cyan
	"\033[48;5;208m", // orange
	"\033[48;5;52m",  // maroon
	"\033[48;5;22m",  // dark green
	"\033[48;5;129m", // purple
	"\033[48;5;177m", // pink
	"\033[48;5;19m",  // dark blue
	"\033[48;5;28m",  // forest green
	"\033[48;5;135m", // lavender
	"\033[48;5;202m", // deep orange
	"\033[48;5;36m",  // dark cyan
}

// DefaultPalette returns a copy of the built-in palette so callers cannot
// mutate the shared backing array.
// Complexity: O(len(palette)).
func DefaultPalette() []string {
	p := make([]string, len(defaultPalette))
	copy(p, defaultPalette)

	return p
}
