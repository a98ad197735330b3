package measure

import (
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/gg"

	"github.com/tsawler/tabgrid/model"
)

// Canvas measures text on a gg drawing context. Without a font file the
// context's built-in 7x13 bitmap face is used.
type Canvas struct {
	mu sync.Mutex
	dc *gg.Context
}

// NewCanvas loads the TrueType font at fontPath with the given point size.
// An empty path keeps the built-in face and ignores size.
func NewCanvas(fontPath string, size float64) (*Canvas, error) {
	dc := gg.NewContext(1, 1)
	if fontPath != "" {
		if err := dc.LoadFontFace(fontPath, size); err != nil {
			return nil, fmt.Errorf("loading font %s: %w", fontPath, err)
		}
	}
	return &Canvas{dc: dc}, nil
}

// MeasureText implements Device. Widths are rounded up to whole pixels.
func (c *Canvas) MeasureText(text string) model.Size {
	c.mu.Lock()
	defer c.mu.Unlock()

	ls := lines(text)
	longest := 0.0
	for _, l := range ls {
		if w, _ := c.dc.MeasureString(l); w > longest {
			longest = w
		}
	}
	return model.Size{
		Width:  math.Ceil(longest),
		Height: math.Ceil(c.dc.FontHeight()) * float64(len(ls)),
	}
}
