package measure

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tsawler/tabgrid/model"
)

// Face measures text with a font face. Widths are glyph advances rounded up
// to whole pixels; each line is one face height tall.
//
// font.Face implementations are not safe for concurrent use, so Face
// serializes calls.
type Face struct {
	mu   sync.Mutex
	face font.Face
}

// NewFace wraps f. A nil face selects basicfont.Face7x13.
func NewFace(f font.Face) *Face {
	if f == nil {
		f = basicfont.Face7x13
	}
	return &Face{face: f}
}

// MeasureText implements Device.
func (d *Face) MeasureText(text string) model.Size {
	d.mu.Lock()
	defer d.mu.Unlock()

	ls := lines(text)
	longest := 0
	for _, l := range ls {
		if w := font.MeasureString(d.face, l).Ceil(); w > longest {
			longest = w
		}
	}
	lineHeight := d.face.Metrics().Height.Ceil()
	return model.Size{
		Width:  float64(longest),
		Height: float64(lineHeight * len(ls)),
	}
}
