package model

// Measurer converts text to its rendered size. The measure package provides
// implementations.
type Measurer interface {
	MeasureText(text string) Size
}

// TextBlock is a measured piece of text. Its size is fixed at construction;
// its bounds are assigned once by table layout.
type TextBlock struct {
	Text string

	// Size is the measured size of Text.
	Size Size

	// MinWidth is the width of a single space, MaxWidth the width of Text.
	MinWidth float64
	MaxWidth float64

	bounds BBox
	placed bool
}

// NewTextBlock measures text with m.
func NewTextBlock(text string, m Measurer) *TextBlock {
	size := m.MeasureText(text)
	return &TextBlock{
		Text:     text,
		Size:     size,
		MinWidth: m.MeasureText(" ").Width,
		MaxWidth: size.Width,
	}
}

// Place records the final bounds of the block.
func (b *TextBlock) Place(bounds BBox) {
	b.bounds = bounds
	b.placed = true
}

// Bounds returns the placed bounds. ok is false until Place has been called.
func (b *TextBlock) Bounds() (bounds BBox, ok bool) {
	return b.bounds, b.placed
}

// Position returns the top-left corner of the placed block.
func (b *TextBlock) Position() (Point, bool) {
	return b.bounds.Origin(), b.placed
}
