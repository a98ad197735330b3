package measure

import (
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/tsawler/tabgrid/model"
)

// Monospace measures text on a fixed character grid: width is Unit times the
// longest line in characters, height is Unit times the number of lines.
type Monospace struct {
	Unit float64

	// Wide counts East Asian wide and fullwidth characters as two cells.
	Wide bool
}

// NewMonospace returns a monospace device. A non-positive unit selects
// DefaultUnit.
func NewMonospace(unit float64) *Monospace {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &Monospace{Unit: unit}
}

// MeasureText implements Device.
func (m *Monospace) MeasureText(text string) model.Size {
	ls := lines(text)
	longest := 0
	for _, l := range ls {
		if n := m.cells(l); n > longest {
			longest = n
		}
	}
	return model.Size{
		Width:  m.Unit * float64(longest),
		Height: m.Unit * float64(len(ls)),
	}
}

func (m *Monospace) cells(line string) int {
	if !m.Wide {
		return utf8.RuneCountInString(line)
	}
	n := 0
	for _, r := range line {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
