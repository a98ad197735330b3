package tables

// RowPlacement selects how row y positions are derived.
type RowPlacement int

const (
	// RowStepFixed places row r at r * RowUnit regardless of content.
	RowStepFixed RowPlacement = iota
	// RowStepMeasured places each row below the measured heights of the rows
	// above it.
	RowStepMeasured
)

func (p RowPlacement) String() string {
	switch p {
	case RowStepFixed:
		return "fixed"
	case RowStepMeasured:
		return "measured"
	default:
		return "unknown"
	}
}

// OverrideMatch selects how a table's style attribute triggers the width
// override.
type OverrideMatch int

const (
	// MatchSubstring triggers on any occurrence of "width" in the style text,
	// including properties such as max-width or border-width.
	MatchSubstring OverrideMatch = iota
	// MatchDeclaration triggers only on a width property declaration.
	MatchDeclaration
)

func (m OverrideMatch) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}

// Config holds layout and extraction settings.
type Config struct {
	// RowUnit is the fixed vertical step between rows.
	RowUnit float64

	// OverrideWidth is the table width used when the style override applies.
	// The declared value is never parsed.
	OverrideWidth float64

	// RowPlacement selects fixed-step or measured row positions.
	RowPlacement RowPlacement

	// OverrideMatch selects how the style attribute is inspected.
	OverrideMatch OverrideMatch

	// Workers bounds how many tables are built and laid out concurrently.
	// Values below 2 process tables one at a time.
	Workers int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowUnit:       20,
		OverrideWidth: 300,
		RowPlacement:  RowStepFixed,
		OverrideMatch: MatchSubstring,
		Workers:       1,
	}
}
