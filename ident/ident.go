package ident

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the tagged classification of a single token.
type Kind int

const (
	// Unknown marks a token matching no recognized category. Unknown tokens
	// ride along inside groups but are never colored, rendered, or reported.
	Unknown Kind = iota
	// Pin is a numbered switch-grid connection point ("A7").
	Pin
	// Transient is a shortable accessory element ("P1+", "P3-").
	Transient
	// Terminal is a declared end-to-end terminal ("GND", "TIP").
	Terminal
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case Pin:
		return "pin"
	case Transient:
		return "transient"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// pinPattern matches a grid pin token: one uppercase letter then digits.
var pinPattern = regexp.MustCompile(`^([A-Z])(\d+)$`)

// transientPattern matches a transient accessory: "P", one digit, a sign.
var transientPattern = regexp.MustCompile(`^P\d[+-]$`)

// Classifier answers category queries against a fixed configuration of grid
// prefixes and declared terminal names. It is immutable once built and safe
// for concurrent use.
type Classifier struct {
	prefixes  map[string]bool // configured grid prefixes, e.g. "A", "B"
	terminals map[string]bool // declared end-to-end terminal names, upper-cased
}

// NewClassifier builds a Classifier from the configured grid prefixes and
// declared terminal names. Terminal names are upper-cased on entry; prefixes
// are taken as given (single uppercase letters by construction).
//
// With no configured prefixes any <uppercase-letter><digits> token counts as
// a pin: the bootstrap fallback used before grid definitions are known.
//
// Complexity: O(P+T) time and memory.
func NewClassifier(prefixes, terminals []string) *Classifier {
	c := &Classifier{
		prefixes:  make(map[string]bool, len(prefixes)),
		terminals: make(map[string]bool, len(terminals)),
	}
	for _, p := range prefixes {
		c.prefixes[p] = true
	}
	for _, t := range terminals {
		c.terminals[strings.ToUpper(t)] = true
	}

	return c
}

// IsPin reports whether token is a switch pin: <uppercase-letter><digits>
// whose letter is a configured grid prefix (or any such token when no
// prefixes are configured).
// Complexity: O(len(token)).
func (c *Classifier) IsPin(token string) bool {
	m := pinPattern.FindStringSubmatch(token)
	if m == nil {
		return false
	}
	if len(c.prefixes) == 0 {
		return true
	}

	return c.prefixes[m[1]]
}

// IsTransient reports whether token is a transient accessory element.
// A token that is also a declared terminal is not transient: declared
// status wins.
// Complexity: O(len(token)).
func (c *Classifier) IsTransient(token string) bool {
	return transientPattern.MatchString(token) && !c.terminals[token]
}

// IsTerminal reports whether token is a declared end-to-end terminal.
// Complexity: O(1).
func (c *Classifier) IsTerminal(token string) bool {
	return c.terminals[token]
}

// IsExternal reports whether token is a terminal element of either subclass
// (transient accessory or declared terminal).
// Complexity: O(len(token)).
func (c *Classifier) IsExternal(token string) bool {
	return c.IsTransient(token) || c.IsTerminal(token)
}

// Kind classifies token once into its tagged variant. Declared terminals are
// checked before the transient pattern so that a configured "P1+" terminal
// classifies as Terminal.
// Complexity: O(len(token)).
func (c *Classifier) Kind(token string) Kind {
	switch {
	case c.terminals[token]:
		return Terminal
	case c.IsPin(token):
		return Pin
	case transientPattern.MatchString(token):
		return Transient
	default:
		return Unknown
	}
}

// SplitPin decomposes a pin token into its grid prefix and numeric index.
// ok is false when token does not match the pin pattern; the configured
// prefix set is not consulted; callers that care use IsPin first.
// Complexity: O(len(token)).
func SplitPin(token string) (prefix string, index int, ok bool) {
	m := pinPattern.FindStringSubmatch(token)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		// Digits beyond the int range; treat as non-pin.
		return "", 0, false
	}

	return m[1], n, true
}
